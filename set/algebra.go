package set

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Intersection, Union and Difference walk both operands once, side by side,
// and append to a fresh set in ascending order. Operands are read through
// their own cursors and are left untouched. The result inherits the
// options of a.

func Intersection[T constraints.Integer](a, b *OrderedSet[T]) (*OrderedSet[T], error) {
	result, err := newResult(a, b)
	if err != nil {
		return nil, err
	}

	ra, rb := newReader(a), newReader(b)
	out := result.tailAppender()
	for ra.ok && rb.ok {
		switch {
		case ra.v < rb.v:
			ra.advance()
		case ra.v > rb.v:
			rb.advance()
		default:
			if err := out.push(ra.v); err != nil {
				return abort(result, err, "intersection failed")
			}
			ra.advance()
			rb.advance()
		}
	}

	return result, nil
}

func Union[T constraints.Integer](a, b *OrderedSet[T]) (*OrderedSet[T], error) {
	result, err := newResult(a, b)
	if err != nil {
		return nil, err
	}

	ra, rb := newReader(a), newReader(b)
	out := result.tailAppender()
	for ra.ok && rb.ok {
		var v T
		switch {
		case ra.v < rb.v:
			v = ra.v
			ra.advance()
		case ra.v > rb.v:
			v = rb.v
			rb.advance()
		default:
			v = ra.v
			ra.advance()
			rb.advance()
		}

		if err := out.push(v); err != nil {
			return abort(result, err, "union failed")
		}
	}

	for _, rest := range []*reader[T]{ra, rb} {
		for ; rest.ok; rest.advance() {
			if err := out.push(rest.v); err != nil {
				return abort(result, err, "union failed")
			}
		}
	}

	return result, nil
}

// Difference returns a - b.
func Difference[T constraints.Integer](a, b *OrderedSet[T]) (*OrderedSet[T], error) {
	result, err := newResult(a, b)
	if err != nil {
		return nil, err
	}

	ra, rb := newReader(a), newReader(b)
	out := result.tailAppender()
	for ra.ok && rb.ok {
		switch {
		case ra.v < rb.v:
			if err := out.push(ra.v); err != nil {
				return abort(result, err, "difference failed")
			}
			ra.advance()
		case ra.v > rb.v:
			rb.advance()
		default:
			ra.advance()
			rb.advance()
		}
	}

	for ; ra.ok; ra.advance() {
		if err := out.push(ra.v); err != nil {
			return abort(result, err, "difference failed")
		}
	}

	return result, nil
}

func newResult[T constraints.Integer](a, b *OrderedSet[T]) (*OrderedSet[T], error) {
	if a.Destroyed() || b.Destroyed() {
		return nil, errors.Wrap(ErrInvalidArgument, "operand set")
	}

	return New[T](a.options...)
}
