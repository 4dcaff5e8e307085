package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type goStringer struct{}

func (goStringer) GoString() string {
	return "goStringer{}"
}

func TestRepr(t *testing.T) {
	require.Equal(t, `"abc"`, Repr("abc"))
	require.Equal(t, "42", Repr(42))
	require.Equal(t, "1.5", Repr(1.5))
	require.Equal(t, "goStringer{}", Repr(goStringer{}))
	require.Equal(t, "<nil>", Repr(nil))
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", Join([]int{}, ", ", func(i int) string { return Repr(i) }))
	require.Equal(t, "1", Join([]int{1}, ", ", func(i int) string { return Repr(i) }))
	require.Equal(t, `"a" -> "b"`, Join([]string{"a", "b"}, " -> ", func(s string) string { return Repr(s) }))
}
