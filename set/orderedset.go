package set

import (
	"github.com/denismitr/intset/list"
	"github.com/denismitr/intset/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type (
	// OrderedSet keeps its items in strictly ascending order without duplicates.
	OrderedSet[T constraints.Integer] struct {
		list    *list.List[T]
		size    int
		options []Option
	}

	IntSet = OrderedSet[int]

	setConfig struct {
		capacity int
	}

	Option func(sc *setConfig)
)

var _ Set[int] = (*OrderedSet[int])(nil)

// WithCapacity limits how many items the set can hold.
// Adding beyond it fails with ErrAllocation.
func WithCapacity(n int) Option {
	return func(sc *setConfig) {
		sc.capacity = n
	}
}

func New[T constraints.Integer](options ...Option) (*OrderedSet[T], error) {
	cfg := setConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	l, err := list.New[T](list.WithCapacity(cfg.capacity))
	if err != nil {
		return nil, errors.Wrap(err, "could not create ordered set")
	}

	return &OrderedSet[T]{
		list:    l,
		options: options,
	}, nil
}

func NewIntSet(options ...Option) (*IntSet, error) {
	return New[int](options...)
}

// Destroy releases every node of the set. Any later call on the set
// fails with ErrInvalidArgument or behaves as on an empty set.
func (s *OrderedSet[T]) Destroy() error {
	if s.Destroyed() {
		return ErrInvalidArgument
	}

	s.size = 0
	return s.list.Destroy()
}

func (s *OrderedSet[T]) Destroyed() bool {
	return s == nil || s.list.Destroyed()
}

func (s *OrderedSet[T]) Len() int {
	if s.Destroyed() {
		return 0
	}
	return s.size
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Add inserts item before the first greater item, or before the tail.
func (s *OrderedSet[T]) Add(item T) (Outcome, error) {
	if s.Destroyed() {
		return None, ErrInvalidArgument
	}

	l := s.list
	l.GotoHead()
	for l.Next() && !l.AtTail() {
		v, err := l.Value()
		if err != nil {
			return None, err
		}

		if v == item {
			return AlreadyPresent, nil
		}

		if v > item {
			break
		}
	}

	if err := l.InsertBefore(item); err != nil {
		return None, errors.Wrapf(err, "could not add %d", item)
	}

	s.size++
	return Added, nil
}

func (s *OrderedSet[T]) Remove(item T) (Outcome, error) {
	if s.Destroyed() {
		return None, ErrInvalidArgument
	}

	l := s.list
	l.GotoHead()
	for l.Next() && !l.AtTail() {
		v, err := l.Value()
		if err != nil {
			return None, err
		}

		if v > item {
			break
		}

		if v == item {
			if err := l.Delete(); err != nil {
				return None, errors.Wrapf(err, "could not remove %d", item)
			}

			s.size--
			return Removed, nil
		}
	}

	return NotPresent, nil
}

func (s *OrderedSet[T]) Contains(item T) bool {
	if s.Destroyed() {
		return false
	}

	r := newReader(s)
	for r.ok && r.v < item {
		r.advance()
	}

	return r.ok && r.v == item
}

// AddSlice adds the items one by one and stops on the first error.
func (s *OrderedSet[T]) AddSlice(items []T) (added int, err error) {
	for _, item := range items {
		outcome, err := s.Add(item)
		if err != nil {
			return added, err
		}

		if outcome == Added {
			added++
		}
	}

	return added, nil
}

// Clear removes all items, the set stays usable.
func (s *OrderedSet[T]) Clear() {
	if s.Destroyed() {
		return
	}

	l := s.list
	l.GotoHead()
	l.Next()
	for !l.AtTail() {
		if err := l.Delete(); err != nil {
			break
		}
	}

	l.GotoHead()
	s.size = l.Len()
}

func (s *OrderedSet[T]) Items() []T {
	return s.ItemsIn(utils.AscOrder)
}

// ItemsIn walks the set from the head in ascending order,
// or from the tail in descending order.
func (s *OrderedSet[T]) ItemsIn(order utils.Order) []T {
	items := make([]T, 0, s.Len())
	if s.Destroyed() {
		return items
	}

	c := s.list.Cursor()
	if order == utils.DescOrder {
		c.GotoTail()
	}

	for c.Move(order) && c.OnData() {
		v, err := c.Value()
		if err != nil {
			break
		}
		items = append(items, v)
	}

	return items
}

func (s *OrderedSet[T]) Min() (T, bool) {
	return s.edge(utils.AscOrder)
}

func (s *OrderedSet[T]) Max() (T, bool) {
	return s.edge(utils.DescOrder)
}

func (s *OrderedSet[T]) edge(order utils.Order) (T, bool) {
	if s.IsEmpty() {
		return utils.GetZero[T](), false
	}

	c := s.list.Cursor()
	if order == utils.DescOrder {
		c.GotoTail()
	}

	c.Move(order)
	v, err := c.Value()
	return v, err == nil
}

func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	if s.IsEmpty() {
		return true
	}

	ra, rb := newReader(s), newReader(other)
	for ra.ok && rb.ok {
		if ra.v != rb.v {
			return false
		}
		ra.advance()
		rb.advance()
	}

	return ra.ok == rb.ok
}

func (s *OrderedSet[T]) Clone() (*OrderedSet[T], error) {
	if s.Destroyed() {
		return nil, ErrInvalidArgument
	}

	clone, err := New[T](s.options...)
	if err != nil {
		return nil, err
	}

	out := clone.tailAppender()
	for r := newReader(s); r.ok; r.advance() {
		if err := out.push(r.v); err != nil {
			return abort(clone, err, "could not clone set")
		}
	}

	return clone, nil
}

func (s *OrderedSet[T]) String() string {
	return Render(s)
}

type (
	// reader walks a set in ascending order on its own cursor
	reader[T constraints.Integer] struct {
		c  *list.Cursor[T]
		v  T
		ok bool
	}

	// appender pushes items at the tail; callers guarantee they arrive
	// in strictly ascending order
	appender[T constraints.Integer] struct {
		s *OrderedSet[T]
		c *list.Cursor[T]
	}
)

func newReader[T constraints.Integer](s *OrderedSet[T]) *reader[T] {
	r := &reader[T]{c: s.list.Cursor()}
	r.advance()
	return r
}

func (r *reader[T]) advance() {
	if !r.c.Next() || !r.c.OnData() {
		r.ok = false
		return
	}

	v, err := r.c.Value()
	r.v, r.ok = v, err == nil
}

func (s *OrderedSet[T]) tailAppender() *appender[T] {
	c := s.list.Cursor()
	c.GotoTail()
	return &appender[T]{s: s, c: c}
}

func (a *appender[T]) push(v T) error {
	if err := a.c.InsertBefore(v); err != nil {
		return err
	}

	a.s.size++
	return nil
}

func abort[T constraints.Integer](s *OrderedSet[T], cause error, msg string) (*OrderedSet[T], error) {
	_ = s.Destroy()
	return nil, errors.Wrap(cause, msg)
}
