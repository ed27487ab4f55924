package registry

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/denismitr/intset/set"
)

const DefaultSlots = 10

var (
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrSlotOccupied   = errors.New("slot already holds a set")
	ErrSlotEmpty      = errors.New("slot holds no set")
	ErrSetOwned       = errors.New("set is held by another slot")
)

type (
	// Registry owns the sets stored in its numbered slots.
	// A set is destroyed when its slot is deleted or overwritten.
	Registry struct {
		slots      int
		m          map[int]*set.IntSet
		setOptions []set.Option
	}

	ForEachFn func(slot int, s *set.IntSet)

	registryConfig struct {
		slots      int
		setOptions []set.Option
	}

	Option func(rc *registryConfig)
)

func WithSlots(n int) Option {
	return func(rc *registryConfig) {
		rc.slots = n
	}
}

// WithSetOptions are applied to every set created by the registry.
func WithSetOptions(options ...set.Option) Option {
	return func(rc *registryConfig) {
		rc.setOptions = append(rc.setOptions, options...)
	}
}

func New(options ...Option) *Registry {
	cfg := registryConfig{slots: DefaultSlots}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.slots <= 0 {
		cfg.slots = DefaultSlots
	}

	return &Registry{
		slots:      cfg.slots,
		m:          make(map[int]*set.IntSet, cfg.slots),
		setOptions: cfg.setOptions,
	}
}

func (r *Registry) Cap() int {
	return r.slots
}

func (r *Registry) Len() int {
	return len(r.m)
}

// SetOptions returns the options new sets are created with.
func (r *Registry) SetOptions() []set.Option {
	return r.setOptions
}

func (r *Registry) Create(slot int) (*set.IntSet, error) {
	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}

	if _, found := r.m[slot]; found {
		return nil, errors.Wrapf(ErrSlotOccupied, "slot %d", slot)
	}

	s, err := set.NewIntSet(r.setOptions...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create set in slot %d", slot)
	}

	r.m[slot] = s
	return s, nil
}

func (r *Registry) Get(slot int) (*set.IntSet, error) {
	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}

	s, found := r.m[slot]
	if !found {
		return nil, errors.Wrapf(ErrSlotEmpty, "slot %d", slot)
	}

	return s, nil
}

func (r *Registry) Has(slot int) bool {
	_, found := r.m[slot]
	return found
}

// Store puts s into the slot, destroying the set that was there unless
// it is s itself. A set held by another slot is rejected.
func (r *Registry) Store(slot int, s *set.IntSet) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	if s.Destroyed() {
		return errors.Wrapf(set.ErrInvalidArgument, "cannot store into slot %d", slot)
	}

	for other, held := range r.m {
		if held == s && other != slot {
			return errors.Wrapf(ErrSetOwned, "cannot store slot %d set into slot %d", other, slot)
		}
	}

	if prev, found := r.m[slot]; found && prev != s {
		_ = prev.Destroy()
	}

	r.m[slot] = s
	return nil
}

func (r *Registry) Delete(slot int) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	s, found := r.m[slot]
	if !found {
		return errors.Wrapf(ErrSlotEmpty, "slot %d", slot)
	}

	delete(r.m, slot)
	return s.Destroy()
}

// Slots returns the occupied slot indices in ascending order.
func (r *Registry) Slots() []int {
	slots := make([]int, 0, len(r.m))
	for slot := range r.m {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

func (r *Registry) ForEach(f ForEachFn) {
	for _, slot := range r.Slots() {
		f(slot, r.m[slot])
	}
}

// Close destroys every stored set.
func (r *Registry) Close() {
	for slot, s := range r.m {
		_ = s.Destroy()
		delete(r.m, slot)
	}
}

func (r *Registry) checkSlot(slot int) error {
	if slot < 0 || slot >= r.slots {
		return errors.Wrapf(ErrSlotOutOfRange, "slot %d not in [0, %d)", slot, r.slots)
	}
	return nil
}
