package utils

// Order is the direction of a traversal
type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func (o Order) String() string {
	if o == DescOrder {
		return "desc"
	}
	return "asc"
}

func GetZero[T any]() T {
	var result T
	return result
}
