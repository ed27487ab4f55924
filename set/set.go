package set

import (
	"github.com/denismitr/intset/list"
	"golang.org/x/exp/constraints"
)

var (
	ErrAllocation      = list.ErrAllocation
	ErrInvalidState    = list.ErrInvalidState
	ErrInvalidArgument = list.ErrInvalidArgument
)

type Set[T constraints.Integer] interface {
	Add(item T) (Outcome, error)
	Remove(item T) (Outcome, error)
	Contains(item T) bool
	Clear()
	Items() []T
	Len() int
}

// Outcome is the result of a membership change. None is only returned
// together with an error.
type Outcome uint8

const (
	None Outcome = iota
	Added
	AlreadyPresent
	Removed
	NotPresent
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "NUMBER_ADDED"
	case AlreadyPresent:
		return "NUMBER_ALREADY_IN_SET"
	case Removed:
		return "NUMBER_REMOVED"
	case NotPresent:
		return "NUMBER_NOT_IN_SET"
	default:
		return "NONE"
	}
}
