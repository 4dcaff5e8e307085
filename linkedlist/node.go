package linkedlist

import (
	"fmt"

	"github.com/webbmaffian/go-ds/internal/utils"
)

type Node[T comparable] struct {
	value T
	next  *Node[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}

func (n *Node[T]) GoString() string {
	return "Node(value=" + utils.Repr(n.value) + ")"
}
