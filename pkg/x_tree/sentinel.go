// file:ptrie/pkg/x_tree/sentinel.go
package x_tree

import (
	"cmp"

	"github.com/rskv-p/ptrie/constant"
)

//---------------------
// Sentinel facade
//---------------------

// Sentinel wraps a Trie for callers that signal "no value" with a reserved
// value of V instead of a second result. The reserved value is fixed per
// instance and can never be stored.
type Sentinel[K cmp.Ordered, V comparable] struct {
	trie    *Trie[K, V]
	invalid V
}

// NewSentinel creates an empty trie that reports misses as invalid.
func NewSentinel[K cmp.Ordered, V comparable](invalid V, opts ...Option) *Sentinel[K, V] {
	return &Sentinel[K, V]{trie: New[K, V](opts...), invalid: invalid}
}

// InvalidValue returns the reserved value.
func (s *Sentinel[K, V]) InvalidValue() V { return s.invalid }

// Trie returns the underlying trie.
func (s *Sentinel[K, V]) Trie() *Trie[K, V] { return s.trie }

// AddKey stores value under key. Panics if value is the reserved value.
func (s *Sentinel[K, V]) AddKey(key []K, value V) {
	if value == s.invalid {
		panic(constant.ErrInvalidValue)
	}
	s.trie.Insert(key, value)
}

// RemoveKey clears key and returns its value, or the reserved value.
func (s *Sentinel[K, V]) RemoveKey(key []K) V {
	return s.or(s.trie.Remove(key))
}

// GetValue returns the value for key, or the reserved value.
func (s *Sentinel[K, V]) GetValue(key []K) V {
	return s.or(s.trie.Get(key))
}

// GetValues returns the values of all stored prefixes of query.
func (s *Sentinel[K, V]) GetValues(query []K) []V {
	return s.trie.Prefixes(query)
}

// FindKey reports whether key holds a value.
func (s *Sentinel[K, V]) FindKey(key []K) bool {
	return s.GetValue(key) != s.invalid
}

func (s *Sentinel[K, V]) or(v V, ok bool) V {
	if !ok {
		return s.invalid
	}
	return v
}
