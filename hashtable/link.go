package hashtable

// Link is a slot in the table's arena. NextIdx points at the next link in
// the same bucket, where 0 marks the end of the chain.
type Link[K comparable, V any] struct {
	NextIdx int
	Pair[K, V]
}
