package hashtable

type Iterator[K comparable, V any] struct {
	table   *Table[K, V]
	link    *Link[K, V]
	bucket  int
	nextIdx int
}

func (iter *Iterator[K, V]) Next() bool {
	for iter.nextIdx == 0 {
		if iter.bucket >= len(iter.table.buckets)-1 {
			return false
		}

		iter.bucket++
		iter.nextIdx = iter.table.buckets[iter.bucket]
	}

	iter.link = iter.table.getLinkAtIndex(iter.nextIdx)
	iter.nextIdx = iter.link.NextIdx

	return true
}

func (iter *Iterator[K, V]) Key() K {
	return iter.link.Key
}

// Val points into the table, so the value can be modified in place. The
// pointer is only valid until the table is modified.
func (iter *Iterator[K, V]) Val() *V {
	return &iter.link.Val
}

func (iter *Iterator[K, V]) Pair() Pair[K, V] {
	return iter.link.Pair
}
