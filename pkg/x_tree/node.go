// file:ptrie/pkg/x_tree/node.go
package x_tree

import (
	"cmp"
	"maps"
	"slices"
)

//---------------------
// Node
//---------------------

// node is one compressed edge of the trie. The symbol that selected the
// node in its parent is not part of edge.
type node[K cmp.Ordered, V any] struct {
	edge     []K
	value    V
	terminal bool              // some key ends exactly here
	children map[K]*node[K, V] // keyed by the symbol following edge
}

// newLeaf creates a terminal node holding value.
func newLeaf[K cmp.Ordered, V any](edge []K, value V) *node[K, V] {
	return &node[K, V]{edge: copySymbols(edge), value: value, terminal: true}
}

// newBranch creates a non-terminal node.
func newBranch[K cmp.Ordered, V any](edge []K) *node[K, V] {
	return &node[K, V]{edge: copySymbols(edge)}
}

func (n *node[K, V]) setChild(c K, cn *node[K, V]) {
	if n.children == nil {
		n.children = make(map[K]*node[K, V], 2)
	}
	n.children[c] = cn
}

// cutHead drops the first i symbols of the edge.
func (n *node[K, V]) cutHead(i int) {
	n.edge = copySymbols(n.edge[i:])
}

// clear turns the node into a branch and returns the value it held.
func (n *node[K, V]) clear() V {
	var zero V
	old := n.value
	n.value, n.terminal = zero, false
	return old
}

// symbols returns the child keys in ascending order.
func (n *node[K, V]) symbols() []K {
	return slices.Sorted(maps.Keys(n.children))
}

//---------------------
// Insert
//---------------------

// insertOp tells what insert did to the structure.
type insertOp uint8

const (
	opCreate insertOp = iota // fresh leaf for the whole suffix
	opSplit                  // edge and suffix diverged, new branch node
	opDemote                 // suffix ended inside the edge
	opMark                   // branch node became terminal
	opUpdate                 // value of an existing key replaced
)

func (op insertOp) String() string {
	switch op {
	case opCreate:
		return "create"
	case opSplit:
		return "split"
	case opDemote:
		return "demote"
	case opMark:
		return "mark"
	case opUpdate:
		return "update"
	}
	return "unknown"
}

// insert merges suffix into the subtree rooted at n and returns the new
// subtree root. old is the replaced value when op is opUpdate.
func insert[K cmp.Ordered, V any](n *node[K, V], suffix []K, value V) (nn *node[K, V], op insertOp, old V) {
	if n == nil {
		return newLeaf(suffix, value), opCreate, old
	}

	i := commonPrefixLen(n.edge, suffix)
	switch {
	case i < min(len(n.edge), len(suffix)):
		bn := newBranch[K, V](suffix[:i])
		bn.setChild(n.edge[i], n)
		bn.setChild(suffix[i], newLeaf(suffix[i+1:], value))
		n.cutHead(i + 1)
		return bn, opSplit, old

	case len(n.edge) < len(suffix):
		c := suffix[i]
		cn, cop, cold := insert(n.children[c], suffix[i+1:], value)
		n.setChild(c, cn)
		return n, cop, cold

	case len(suffix) < len(n.edge):
		ln := newLeaf(suffix, value)
		ln.setChild(n.edge[i], n)
		n.cutHead(i + 1)
		return ln, opDemote, old
	}

	op = opUpdate
	if !n.terminal {
		op = opMark
	}
	old = n.value
	n.value, n.terminal = value, true
	return n, op, old
}

//---------------------
// Lookup
//---------------------

// find walks to the node whose accumulated key equals suffix.
func (n *node[K, V]) find(suffix []K) *node[K, V] {
	for n != nil {
		if !hasPrefix(suffix, n.edge) {
			return nil
		}
		el := len(n.edge)
		if len(suffix) == el {
			return n
		}
		n, suffix = n.children[suffix[el]], suffix[el+1:]
	}
	return nil
}

// get returns the value stored for suffix.
func (n *node[K, V]) get(suffix []K) (V, bool) {
	var zero V
	if nn := n.find(suffix); nn != nil && nn.terminal {
		return nn.value, true
	}
	return zero, false
}

// remove clears the terminal value for suffix. The node stays in place.
func (n *node[K, V]) remove(suffix []K) (V, bool) {
	var zero V
	if nn := n.find(suffix); nn != nil && nn.terminal {
		return nn.clear(), true
	}
	return zero, false
}

// collect appends the values of all terminal nodes on the path of query.
func (n *node[K, V]) collect(query []K, out []V) []V {
	for n != nil {
		if !hasPrefix(query, n.edge) {
			return out
		}
		if n.terminal {
			out = append(out, n.value)
		}
		el := len(n.edge)
		if len(query) == el {
			return out
		}
		n, query = n.children[query[el]], query[el+1:]
	}
	return out
}

//---------------------
// Traversal
//---------------------

// iter visits terminal nodes in symbol order. pre holds the key up to and
// including the symbol that selected n.
func (n *node[K, V]) iter(pre []K, cb func(key []K, val V) bool) bool {
	pre = append(pre, n.edge...)
	if n.terminal && !cb(slices.Clone(pre), n.value) {
		return false
	}
	for _, c := range n.symbols() {
		if !n.children[c].iter(append(pre, c), cb) {
			return false
		}
	}
	return true
}

// compact drops childless branch nodes and merges single-child branch
// nodes into their child. Returns the new subtree root (nil if nothing is
// left) and the number of nodes eliminated.
func (n *node[K, V]) compact() (*node[K, V], int) {
	var removed int
	for c, cn := range n.children {
		nn, r := cn.compact()
		removed += r
		if nn == nil {
			delete(n.children, c)
		} else {
			n.children[c] = nn
		}
	}
	if n.terminal {
		return n, removed
	}
	switch len(n.children) {
	case 0:
		return nil, removed + 1
	case 1:
		for c, cn := range n.children {
			edge := make([]K, 0, len(n.edge)+1+len(cn.edge))
			edge = append(edge, n.edge...)
			edge = append(edge, c)
			cn.edge = append(edge, cn.edge...)
			return cn, removed + 1
		}
	}
	return n, removed
}
