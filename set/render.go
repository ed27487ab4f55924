package set

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Render formats a set as {v1,v2,...,vn}, or {} when it is empty.
func Render[T constraints.Integer](s *OrderedSet[T]) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.Items() {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(format(v))
	}
	b.WriteByte('}')
	return b.String()
}

func format[T constraints.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
