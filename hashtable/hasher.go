package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/webbmaffian/go-ds/internal/utils"
)

type Hasher[K any] interface {
	Hash(key K) uint64
}

// ComparableHasher hashes any comparable key with a random seed. Use
// NewComparableHasher, as the zero value has no seed.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{
		seed: maphash.MakeSeed(),
	}
}

func (h ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// StringHasher hashes string keys with xxHash. The result is stable across
// processes, so bucket layout and iteration order are reproducible.
type StringHasher[K ~string] struct{}

func (StringHasher[K]) Hash(key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// IntegerHasher uses the key itself as the hash, which places a key in
// bucket key mod capacity.
type IntegerHasher[K utils.Integer] struct{}

func (IntegerHasher[K]) Hash(key K) uint64 {
	return uint64(key)
}
