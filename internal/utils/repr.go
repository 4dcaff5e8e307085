package utils

import (
	"fmt"
	"strings"
)

// Repr formats a value the way it would be written as a literal: strings
// are quoted, everything else uses its default format.
func Repr(val any) string {
	switch v := val.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.GoStringer:
		return v.GoString()
	}

	return fmt.Sprint(val)
}

func Join[T any](items []T, sep string, format func(T) string) string {
	var b strings.Builder

	for i := range items {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(format(items[i]))
	}

	return b.String()
}
