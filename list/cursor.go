package list

import (
	"github.com/denismitr/intset/utils"
	"golang.org/x/exp/constraints"
)

// Cursor is a position in a List that moves independently of the list's
// own cursor. A cursor whose node was deleted through another position
// reports ErrInvalidState until it is moved to a sentinel again.
type Cursor[T constraints.Integer] struct {
	l   *List[T]
	pos position
}

func (c *Cursor[T]) GotoHead() {
	c.l.gotoNode(&c.pos, headNode)
}

func (c *Cursor[T]) GotoTail() {
	c.l.gotoNode(&c.pos, tailNode)
}

func (c *Cursor[T]) Next() bool {
	return c.l.step(&c.pos, utils.AscOrder)
}

func (c *Cursor[T]) Prev() bool {
	return c.l.step(&c.pos, utils.DescOrder)
}

// Move steps once in the given direction.
func (c *Cursor[T]) Move(o utils.Order) bool {
	return c.l.step(&c.pos, o)
}

func (c *Cursor[T]) AtHead() bool {
	return c.l.isAt(c.pos, headNode)
}

func (c *Cursor[T]) AtTail() bool {
	return c.l.isAt(c.pos, tailNode)
}

// OnData reports whether the cursor rests on a live, non-sentinel node.
func (c *Cursor[T]) OnData() bool {
	return c.l.check(c.pos) == nil && !isSentinel(c.pos.id)
}

func (c *Cursor[T]) Value() (T, error) {
	return c.l.valueAt(c.pos)
}

func (c *Cursor[T]) InsertAfter(v T) error {
	return c.l.insertAt(c.pos, v, true)
}

func (c *Cursor[T]) InsertBefore(v T) error {
	return c.l.insertAt(c.pos, v, false)
}

func (c *Cursor[T]) Delete() error {
	return c.l.deleteAt(&c.pos)
}

// Sync moves the list's own cursor to this position.
func (c *Cursor[T]) Sync() error {
	if err := c.l.check(c.pos); err != nil {
		return err
	}
	c.l.current = c.pos
	return nil
}
