package list

import "github.com/pkg/errors"

var (
	ErrAllocation      = errors.New("node allocation failed")
	ErrInvalidState    = errors.New("invalid cursor position")
	ErrInvalidArgument = errors.New("list is nil or destroyed")
)
