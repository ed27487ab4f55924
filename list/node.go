package list

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const (
	nilNode  = -1
	headNode = 0
	tailNode = 1
)

type (
	node[T constraints.Integer] struct {
		value T
		next  int
		prev  int
		gen   uint32
		live  bool
	}

	// position addresses a node by arena index; gen must match the
	// slot generation, otherwise the node it pointed to was released.
	position struct {
		id  int
		gen uint32
	}

	arena[T constraints.Integer] struct {
		nodes    []node[T]
		free     []int
		capacity int
		used     int
	}
)

func newArena[T constraints.Integer](capacity int) *arena[T] {
	a := &arena[T]{
		nodes:    make([]node[T], 2, 2+initialCap(capacity)),
		capacity: capacity,
	}

	a.nodes[headNode] = node[T]{next: tailNode, prev: nilNode, live: true}
	a.nodes[tailNode] = node[T]{next: nilNode, prev: headNode, live: true}

	return a
}

func initialCap(capacity int) int {
	if capacity > 0 && capacity < 16 {
		return capacity
	}
	return 16
}

// alloc reserves a detached data node. Nothing is linked yet, so a failure
// leaves the list untouched.
func (a *arena[T]) alloc(v T) (int, error) {
	if a.capacity > 0 && a.used >= a.capacity {
		return nilNode, errors.Wrapf(ErrAllocation, "capacity of %d nodes exhausted", a.capacity)
	}

	var id int
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[T]{})
		id = len(a.nodes) - 1
	}

	nd := &a.nodes[id]
	nd.value = v
	nd.next = nilNode
	nd.prev = nilNode
	nd.live = true
	a.used++

	return id, nil
}

func (a *arena[T]) release(id int) {
	nd := &a.nodes[id]
	nd.live = false
	nd.gen++
	nd.next = nilNode
	nd.prev = nilNode
	a.free = append(a.free, id)
	a.used--
}

func (a *arena[T]) at(id int) position {
	return position{id: id, gen: a.nodes[id].gen}
}

func (a *arena[T]) valid(p position) bool {
	if p.id < 0 || p.id >= len(a.nodes) {
		return false
	}
	nd := a.nodes[p.id]
	return nd.live && nd.gen == p.gen
}

func isSentinel(id int) bool {
	return id == headNode || id == tailNode
}
