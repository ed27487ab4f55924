package list

import (
	"github.com/denismitr/intset/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type (
	// List is a doubly linked list bounded by a head and a tail sentinel.
	// current is the only transient state it carries: a non-owning position
	// used by the cursor-relative operations. Independent positions are
	// obtained with Cursor.
	List[T constraints.Integer] struct {
		arena     *arena[T]
		current   position
		size      int
		destroyed bool
	}

	listConfig struct {
		capacity int
	}

	Option func(lc *listConfig)
)

// WithCapacity limits the number of data nodes the list may hold,
// sentinels excluded. Zero means no limit.
func WithCapacity(n int) Option {
	return func(lc *listConfig) {
		lc.capacity = n
	}
}

func New[T constraints.Integer](options ...Option) (*List[T], error) {
	cfg := listConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.capacity < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative capacity %d", cfg.capacity)
	}

	a := newArena[T](cfg.capacity)
	return &List[T]{
		arena:   a,
		current: a.at(headNode),
	}, nil
}

// Destroy releases every node including the sentinels.
// The list is unusable afterwards.
func (l *List[T]) Destroy() error {
	if l == nil || l.destroyed {
		return ErrInvalidArgument
	}

	l.arena = nil
	l.current = position{id: nilNode}
	l.size = 0
	l.destroyed = true
	return nil
}

func (l *List[T]) Destroyed() bool {
	return l == nil || l.destroyed
}

func (l *List[T]) Len() int {
	if l.Destroyed() {
		return 0
	}
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *List[T]) Capacity() int {
	if l.Destroyed() {
		return 0
	}
	return l.arena.capacity
}

// Cursor returns a new position at the head sentinel, independent
// of the list's own cursor.
func (l *List[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{l: l, pos: position{id: nilNode}}
	if !l.Destroyed() {
		c.pos = l.arena.at(headNode)
	}
	return c
}

func (l *List[T]) GotoHead() {
	l.gotoNode(&l.current, headNode)
}

func (l *List[T]) GotoTail() {
	l.gotoNode(&l.current, tailNode)
}

// Next moves the cursor forward unless it is on the tail sentinel.
func (l *List[T]) Next() bool {
	return l.step(&l.current, utils.AscOrder)
}

// Prev moves the cursor backward unless it is on the head sentinel.
func (l *List[T]) Prev() bool {
	return l.step(&l.current, utils.DescOrder)
}

func (l *List[T]) AtHead() bool {
	return l.isAt(l.current, headNode)
}

func (l *List[T]) AtTail() bool {
	return l.isAt(l.current, tailNode)
}

func (l *List[T]) Value() (T, error) {
	return l.valueAt(l.current)
}

func (l *List[T]) InsertAfter(v T) error {
	return l.insertAt(l.current, v, true)
}

func (l *List[T]) InsertBefore(v T) error {
	return l.insertAt(l.current, v, false)
}

// Delete removes the node under the cursor and moves the cursor
// to its former successor.
func (l *List[T]) Delete() error {
	return l.deleteAt(&l.current)
}

func (l *List[T]) check(p position) error {
	if l.Destroyed() {
		return ErrInvalidArgument
	}
	if !l.arena.valid(p) {
		return errors.Wrap(ErrInvalidState, "cursor refers to a released node")
	}
	return nil
}

func (l *List[T]) gotoNode(p *position, id int) {
	if l.Destroyed() {
		return
	}
	*p = l.arena.at(id)
}

func (l *List[T]) isAt(p position, id int) bool {
	return l.check(p) == nil && p.id == id
}

func (l *List[T]) step(p *position, dir utils.Order) bool {
	if l.check(*p) != nil {
		return false
	}

	nd := l.arena.nodes[p.id]
	to := nd.next
	if dir == utils.DescOrder {
		to = nd.prev
	}

	if to == nilNode {
		return false
	}

	*p = l.arena.at(to)
	return true
}

func (l *List[T]) valueAt(p position) (T, error) {
	if err := l.check(p); err != nil {
		return utils.GetZero[T](), err
	}
	if isSentinel(p.id) {
		return utils.GetZero[T](), errors.Wrap(ErrInvalidState, "cursor is on a sentinel")
	}
	return l.arena.nodes[p.id].value, nil
}

func (l *List[T]) insertAt(p position, v T, after bool) error {
	if err := l.check(p); err != nil {
		return err
	}
	if after && p.id == tailNode {
		return errors.Wrap(ErrInvalidState, "cannot insert after the tail sentinel")
	}
	if !after && p.id == headNode {
		return errors.Wrap(ErrInvalidState, "cannot insert before the head sentinel")
	}

	id, err := l.arena.alloc(v)
	if err != nil {
		return err
	}

	nodes := l.arena.nodes
	prev, next := nodes[p.id].prev, p.id
	if after {
		prev, next = p.id, nodes[p.id].next
	}

	nodes[id].prev = prev
	nodes[id].next = next
	nodes[prev].next = id
	nodes[next].prev = id
	l.size++

	return nil
}

func (l *List[T]) deleteAt(p *position) error {
	if err := l.check(*p); err != nil {
		return err
	}
	if isSentinel(p.id) {
		return errors.Wrap(ErrInvalidState, "sentinels cannot be deleted")
	}

	nodes := l.arena.nodes
	prev, next := nodes[p.id].prev, nodes[p.id].next
	nodes[prev].next = next
	nodes[next].prev = prev

	l.arena.release(p.id)
	l.size--
	*p = l.arena.at(next)

	return nil
}
