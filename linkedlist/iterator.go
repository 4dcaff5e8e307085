package linkedlist

type Iterator[T comparable] struct {
	node *Node[T]
	next *Node[T]
}

func (iter *Iterator[T]) Next() bool {
	if iter.next == nil {
		return false
	}

	iter.node = iter.next
	iter.next = iter.node.next

	return true
}

func (iter *Iterator[T]) Val() T {
	return iter.node.value
}

func (iter *Iterator[T]) Node() *Node[T] {
	return iter.node
}
