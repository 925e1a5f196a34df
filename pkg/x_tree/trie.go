// file:ptrie/pkg/x_tree/trie.go
package x_tree

import (
	"cmp"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Trie
//---------------------

// Trie is a Patricia trie mapping symbol sequences to values. The first
// symbol of a key selects a root node, every further level consumes one
// dispatch symbol plus the node's edge.
//
// A Trie is not safe for concurrent use.
type Trie[K cmp.Ordered, V any] struct {
	roots map[K]*node[K, V]
	size  int
	log   zerolog.Logger
}

// Option configures a Trie.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates an empty Trie.
func New[K cmp.Ordered, V any](opts ...Option) *Trie[K, V] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Trie[K, V]{
		roots: make(map[K]*node[K, V]),
		log:   o.logger.With().Str("component", "x_tree").Logger(),
	}
}

// Size returns number of keys holding a value.
func (t *Trie[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Empty clears the tree.
func (t *Trie[K, V]) Empty() *Trie[K, V] {
	if t == nil {
		return New[K, V]()
	}
	clear(t.roots)
	t.size = 0
	return t
}

// Insert adds key or replaces its value. It returns the previous value and
// true if the key was already present. Panics on an empty key. A nil Trie
// ignores the call.
func (t *Trie[K, V]) Insert(key []K, value V) (V, bool) {
	mustKey(key)
	if t == nil {
		var zero V
		return zero, false
	}
	if t.roots == nil {
		t.roots = make(map[K]*node[K, V])
	}

	nn, op, old := insert(t.roots[key[0]], key[1:], value)
	t.roots[key[0]] = nn

	updated := op == opUpdate
	if !updated {
		t.size++
	}
	t.log.Debug().Str("op", op.String()).Int("key_len", len(key)).Int("size", t.size).Msg("insert")
	return old, updated
}

// Get returns the value for an exact key match. Panics on an empty key.
func (t *Trie[K, V]) Get(key []K) (V, bool) {
	mustKey(key)
	var zero V
	if t == nil {
		return zero, false
	}
	n, ok := t.roots[key[0]]
	if !ok {
		return zero, false
	}
	return n.get(key[1:])
}

// Contains reports whether key holds a value. Panics on an empty key.
func (t *Trie[K, V]) Contains(key []K) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove clears the value stored for key and returns it. The node that held
// it is left in place; see Compact. Panics on an empty key.
func (t *Trie[K, V]) Remove(key []K) (V, bool) {
	mustKey(key)
	var zero V
	if t == nil {
		return zero, false
	}
	n, ok := t.roots[key[0]]
	if !ok {
		return zero, false
	}
	val, removed := n.remove(key[1:])
	if removed {
		t.size--
		t.log.Debug().Int("key_len", len(key)).Int("size", t.size).Msg("remove")
	}
	return val, removed
}

// Prefixes returns the values of all stored keys that are prefixes of
// query, shortest first. Panics on an empty query.
func (t *Trie[K, V]) Prefixes(query []K) []V {
	mustKey(query)
	if t == nil {
		return nil
	}
	n, ok := t.roots[query[0]]
	if !ok {
		return nil
	}
	return n.collect(query[1:], nil)
}

// IterOrdered calls cb for every stored key in lexicographic symbol order
// until cb returns false.
func (t *Trie[K, V]) IterOrdered(cb func(key []K, val V) bool) {
	if t == nil || cb == nil {
		return
	}
	pre := make([]K, 0, 64)
	for _, c := range t.rootSymbols() {
		if !t.roots[c].iter(append(pre[:0], c), cb) {
			return
		}
	}
}

// Compact removes the structure left behind by Remove: branch nodes without
// children are dropped and branch nodes with a single child are merged into
// it. Remove never does this on its own. Returns the number of nodes
// eliminated.
func (t *Trie[K, V]) Compact() int {
	if t == nil {
		return 0
	}
	var removed int
	for c, n := range t.roots {
		nn, r := n.compact()
		removed += r
		if nn == nil {
			delete(t.roots, c)
		} else {
			t.roots[c] = nn
		}
	}
	t.log.Debug().Int("removed", removed).Msg("compact")
	return removed
}

func (t *Trie[K, V]) rootSymbols() []K {
	return slices.Sorted(maps.Keys(t.roots))
}
