package hashtable

import (
	"fmt"
	"iter"
	"slices"

	"github.com/webbmaffian/go-ds/internal/utils"
)

const (
	DefaultCapacity            = 8
	DefaultLoadFactorThreshold = 0.6
)

// Initialize a new hash table with a capacity (number of buckets) and a load
// factor threshold. Capacity must be at least 1, and the threshold must be in
// the range (0, 1].
func New[K comparable, V any](capacity int, loadFactorThreshold float64) (t *Table[K, V], err error) {
	return NewWithHasher[K, V](capacity, loadFactorThreshold, NewComparableHasher[K]())
}

func NewWithHasher[K comparable, V any](capacity int, loadFactorThreshold float64, hasher Hasher[K]) (t *Table[K, V], err error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be a positive number, got %d", ErrInvalidArgument, capacity)
	}

	// Negated so that NaN is rejected too
	if !(loadFactorThreshold > 0 && loadFactorThreshold <= 1) {
		return nil, fmt.Errorf("%w: load factor threshold must be in (0, 1], got %v", ErrInvalidArgument, loadFactorThreshold)
	}

	if hasher == nil {
		return nil, fmt.Errorf("%w: hasher is required", ErrInvalidArgument)
	}

	return newTable[K, V](capacity, loadFactorThreshold, hasher), nil
}

func NewDefault[K comparable, V any]() *Table[K, V] {
	return newTable[K, V](DefaultCapacity, DefaultLoadFactorThreshold, NewComparableHasher[K]())
}

// Build a hash table from a map. If left out, capacity will equal the number
// of entries in the map.
func FromMap[K comparable, V any](m map[K]V, capacity ...int) *Table[K, V] {
	c := len(m)

	if capacity != nil && capacity[0] > 0 {
		c = capacity[0]
	}

	if c == 0 {
		c = DefaultCapacity
	}

	t := newTable[K, V](c, DefaultLoadFactorThreshold, NewComparableHasher[K]())

	for key, val := range m {
		t.Set(key, val)
	}

	return t
}

func newTable[K comparable, V any](capacity int, loadFactorThreshold float64, hasher Hasher[K]) *Table[K, V] {
	return &Table[K, V]{
		hasher:    hasher,
		buckets:   make([]int, capacity),
		threshold: loadFactorThreshold,
	}
}

// Hash table with chained buckets. Each bucket holds the index of its first
// link in the arena, and links are chained through their NextIdx. Index 0
// means "no link". Tables must be created with one of the constructors.
type Table[K comparable, V any] struct {
	hasher    Hasher[K]
	buckets   []int
	links     []Link[K, V]
	freeIdx   int
	length    int
	threshold float64
}

func (t *Table[K, V]) Len() int {
	return t.length
}

func (t *Table[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.length) / float64(len(t.buckets))
}

func (t *Table[K, V]) LoadFactorThreshold() float64 {
	return t.threshold
}

// Set stores the value under the key, replacing any previous value. The load
// factor is checked before anything else, so the table may grow even when
// an existing key is replaced.
func (t *Table[K, V]) Set(key K, val V) {
	if t.LoadFactor() >= t.threshold {
		t.resize()
	}

	t.put(key, val)
}

func (t *Table[K, V]) Get(key K) (val V, err error) {
	_, idx, _ := t.find(key)

	if idx == 0 {
		err = fmt.Errorf("%w: %s", ErrKeyNotFound, utils.Repr(key))
		return
	}

	return t.getLinkAtIndex(idx).Val, nil
}

func (t *Table[K, V]) GetOr(key K, fallback V) V {
	if _, idx, _ := t.find(key); idx != 0 {
		return t.getLinkAtIndex(idx).Val
	}

	return fallback
}

func (t *Table[K, V]) Contains(key K) bool {
	_, idx, _ := t.find(key)
	return idx != 0
}

func (t *Table[K, V]) Delete(key K) error {
	bucket, idx, prevIdx := t.find(key)

	if idx == 0 {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, utils.Repr(key))
	}

	link := t.getLinkAtIndex(idx)
	t.setNextIdx(bucket, prevIdx, link.NextIdx)

	// Zero the link so it doesn't keep the pair alive, and put it on the free list
	*link = Link[K, V]{NextIdx: t.freeIdx}
	t.freeIdx = idx
	t.length--

	return nil
}

func (t *Table[K, V]) Update(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		t.Set(p.Key, p.Val)
	}
}

// Clear removes all pairs but keeps the current capacity.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.links = nil
	t.freeIdx = 0
	t.length = 0
}

func (t *Table[K, V]) Copy() *Table[K, V] {
	return &Table[K, V]{
		hasher:    t.hasher,
		buckets:   slices.Clone(t.buckets),
		links:     slices.Clone(t.links),
		freeIdx:   t.freeIdx,
		length:    t.length,
		threshold: t.threshold,
	}
}

// Union returns a new table holding the pairs of both tables. Where a key
// exists in both, the value from other wins. Neither table is modified.
func (t *Table[K, V]) Union(other *Table[K, V]) *Table[K, V] {
	capacity := t.length

	if other != nil {
		capacity += other.length
	}

	u := newTable[K, V](max(capacity, 1), t.threshold, t.hasher)

	for iter := t.Iterate(); iter.Next(); {
		u.Set(iter.Key(), *iter.Val())
	}

	if other != nil {
		for iter := other.Iterate(); iter.Next(); {
			u.Set(iter.Key(), *iter.Val())
		}
	}

	return u
}

func (t *Table[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		table:   t,
		nextIdx: t.buckets[0],
	}
}

func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for iter := t.Iterate(); iter.Next(); {
			if !yield(iter.Key(), *iter.Val()) {
				return
			}
		}
	}
}

// Keys returns every key once, in bucket order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.length)

	for iter := t.Iterate(); iter.Next(); {
		keys = append(keys, iter.Key())
	}

	return keys
}

// Values returns the value of every pair in bucket order. Unlike keys,
// values may repeat.
func (t *Table[K, V]) Values() []V {
	vals := make([]V, 0, t.length)

	for iter := t.Iterate(); iter.Next(); {
		vals = append(vals, *iter.Val())
	}

	return vals
}

func (t *Table[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.length)

	for iter := t.Iterate(); iter.Next(); {
		pairs = append(pairs, iter.Pair())
	}

	return pairs
}

func (t *Table[K, V]) String() string {
	return "{" + utils.Join(t.Pairs(), ", ", Pair[K, V].String) + "}"
}

func (t *Table[K, V]) GoString() string {
	return "hashtable.FromMap(" + t.String() + ")"
}

// Equal reports whether both tables hold the same set of pairs, regardless
// of capacity or bucket layout.
func Equal[K, V comparable](a, b *Table[K, V]) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil || a.length != b.length {
		return false
	}

	for iter := a.Iterate(); iter.Next(); {
		_, idx, _ := b.find(iter.Key())

		if idx == 0 || b.getLinkAtIndex(idx).Val != *iter.Val() {
			return false
		}
	}

	return true
}

// Doubles the capacity and rehashes every pair into fresh buckets. The arena
// is rebuilt as well, which drops any free links.
func (t *Table[K, V]) resize() {
	resized := newTable[K, V](len(t.buckets)*2, t.threshold, t.hasher)
	resized.links = make([]Link[K, V], 0, t.length)

	for iter := t.Iterate(); iter.Next(); {
		resized.put(iter.Key(), *iter.Val())
	}

	t.buckets, t.links, t.freeIdx = resized.buckets, resized.links, 0
}

func (t *Table[K, V]) put(key K, val V) {
	bucket, idx, prevIdx := t.find(key)

	if idx != 0 {
		t.getLinkAtIndex(idx).Pair = Pair[K, V]{Key: key, Val: val}
		return
	}

	t.setNextIdx(bucket, prevIdx, t.getAvailableIndex(key, val))
	t.length++
}

// Finds the link holding the key. If there is no such link, idx is 0 and
// prevIdx is the last link of the bucket (or 0 if the bucket is empty).
func (t *Table[K, V]) find(key K) (bucket int, idx int, prevIdx int) {
	bucket = t.getBucket(key)

	for idx = t.buckets[bucket]; idx != 0; idx = t.getLinkAtIndex(idx).NextIdx {
		if t.getLinkAtIndex(idx).Key == key {
			return
		}

		prevIdx = idx
	}

	return
}

func (t *Table[K, V]) setNextIdx(bucket int, prevIdx int, idx int) {
	if prevIdx == 0 {
		t.buckets[bucket] = idx
	} else {
		t.getLinkAtIndex(prevIdx).NextIdx = idx
	}
}

func (t *Table[K, V]) getBucket(key K) int {
	return int(t.hasher.Hash(key) % uint64(len(t.buckets)))
}

func (t *Table[K, V]) getLinkAtIndex(idx int) *Link[K, V] {
	return &t.links[idx-1]
}

func (t *Table[K, V]) getAvailableIndex(key K, val V) (idx int) {
	if t.freeIdx != 0 {
		idx = t.freeIdx
		link := t.getLinkAtIndex(idx)
		t.freeIdx = link.NextIdx
		*link = Link[K, V]{Pair: Pair[K, V]{Key: key, Val: val}}
		return
	}

	t.links = append(t.links, Link[K, V]{Pair: Pair[K, V]{Key: key, Val: val}})
	return len(t.links)
}
