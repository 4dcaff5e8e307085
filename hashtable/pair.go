package hashtable

import "github.com/webbmaffian/go-ds/internal/utils"

// Pair is a key with its value, as stored in a bucket.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

func (p Pair[K, V]) String() string {
	return utils.Repr(p.Key) + ": " + utils.Repr(p.Val)
}
