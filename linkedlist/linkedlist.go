package linkedlist

import (
	"fmt"
	"iter"

	"github.com/webbmaffian/go-ds/internal/utils"
)

// Initialize a new singly linked list holding the values in order. The zero
// value of List is an empty list ready to use.
func New[T comparable](values ...T) *List[T] {
	l := new(List[T])

	// Build back to front to avoid walking the list for each value
	for i := len(values) - 1; i >= 0; i-- {
		l.AppendLeft(values[i])
	}

	return l
}

// Singly linked list. Every node is owned by exactly one predecessor (or by
// the list itself for the head), so the chain can't form cycles.
type List[T comparable] struct {
	head   *Node[T]
	length int
}

func (l *List[T]) Len() int {
	return l.length
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

func (l *List[T]) Append(value T) {
	node := &Node[T]{value: value}

	if l.head == nil {
		l.head = node
	} else {
		l.last().next = node
	}

	l.length++
}

func (l *List[T]) AppendLeft(value T) {
	l.head = &Node[T]{value: value, next: l.head}
	l.length++
}

// Insert places the value so it ends up at the given position. Negative
// positions count from the end, and positions outside the list are clamped
// to either end.
func (l *List[T]) Insert(value T, position int) {
	if position < 0 {
		position += l.length
	}

	if position <= 0 {
		l.AppendLeft(value)
		return
	}

	if position >= l.length {
		l.Append(value)
		return
	}

	prev := l.head

	for i := 1; i < position; i++ {
		prev = prev.next
	}

	prev.next = &Node[T]{value: value, next: prev.next}
	l.length++
}

// InsertAfter inserts the value right after the first node holding target.
// It reports whether target was found; if not, the list is left unchanged.
func (l *List[T]) InsertAfter(target T, value T) bool {
	for node := l.head; node != nil; node = node.next {
		if node.value == target {
			node.next = &Node[T]{value: value, next: node.next}
			l.length++
			return true
		}
	}

	return false
}

// InsertBefore inserts the value right before the first node holding target.
// It reports whether target was found; if not, the list is left unchanged.
func (l *List[T]) InsertBefore(target T, value T) bool {
	var prev *Node[T]

	for node := l.head; node != nil; prev, node = node, node.next {
		if node.value != target {
			continue
		}

		if prev == nil {
			l.AppendLeft(value)
		} else {
			prev.next = &Node[T]{value: value, next: node}
			l.length++
		}

		return true
	}

	return false
}

// Pop removes and returns the last value.
func (l *List[T]) Pop() (value T, err error) {
	if l.head == nil {
		err = fmt.Errorf("pop: %w", ErrEmpty)
		return
	}

	if l.head.next == nil {
		value = l.head.value
		l.head = nil
	} else {
		prev := l.head

		for prev.next.next != nil {
			prev = prev.next
		}

		value = prev.next.value
		prev.next = nil
	}

	l.length--
	return
}

// PopLeft removes and returns the first value.
func (l *List[T]) PopLeft() (value T, err error) {
	if l.head == nil {
		err = fmt.Errorf("pop: %w", ErrEmpty)
		return
	}

	value = l.head.value
	l.head = l.head.next
	l.length--

	return
}

// Remove unlinks the first node holding the value. On an empty list the
// error matches both ErrEmpty and ErrValueNotFound.
func (l *List[T]) Remove(value T) error {
	if l.head == nil {
		return fmt.Errorf("%w: %w: %s", ErrEmpty, ErrValueNotFound, utils.Repr(value))
	}

	if l.head.value == value {
		l.head = l.head.next
		l.length--
		return nil
	}

	for prev := l.head; prev.next != nil; prev = prev.next {
		if prev.next.value == value {
			prev.next = prev.next.next
			l.length--
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrValueNotFound, utils.Repr(value))
}

func (l *List[T]) Iterate() Iterator[T] {
	return Iterator[T]{
		next: l.head,
	}
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)

	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}

	return values
}

func (l *List[T]) String() string {
	return "[" + utils.Join(l.nodes(), " -> ", (*Node[T]).String) + "]"
}

func (l *List[T]) GoString() string {
	return "LinkedList([" + utils.Join(l.nodes(), ", ", (*Node[T]).GoString) + "])"
}

func (l *List[T]) nodes() []*Node[T] {
	nodes := make([]*Node[T], 0, l.length)

	for node := l.head; node != nil; node = node.next {
		nodes = append(nodes, node)
	}

	return nodes
}

// Must not be called on an empty list.
func (l *List[T]) last() *Node[T] {
	node := l.head

	for node.next != nil {
		node = node.next
	}

	return node
}
