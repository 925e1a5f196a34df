// file:ptrie/pkg/x_tree/dump.go
package x_tree

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes one line per node in depth-first order:
//
//	<symbol> +<edge length> (<value or ->)
//
// indented two spaces per level. Siblings are listed in ascending symbol
// order. The format is meant for debugging only.
func (t *Trie[K, V]) Dump(w io.Writer) {
	t.DumpFunc(w, func(c K) string { return fmt.Sprint(c) })
}

// DumpFunc is Dump with a custom symbol formatter.
func (t *Trie[K, V]) DumpFunc(w io.Writer, sym func(K) string) {
	if t == nil {
		return
	}
	for _, c := range t.rootSymbols() {
		t.roots[c].dump(w, sym(c), sym, 0)
	}
}

// dump writes a single node (recursive).
func (n *node[K, V]) dump(w io.Writer, label string, sym func(K) string, depth int) {
	val := "-"
	if n.terminal {
		val = fmt.Sprint(n.value)
	}
	fmt.Fprintf(w, "%s<%s> +%d (%s)\n", strings.Repeat("  ", depth), label, len(n.edge), val)
	for _, c := range n.symbols() {
		n.children[c].dump(w, sym(c), sym, depth+1)
	}
}

//---------------------
// Stats
//---------------------

// Stats summarizes the shape of a Trie.
type Stats struct {
	Nodes     int // all nodes
	Terminals int // nodes holding a value
	Branches  int // nodes without a value
	Symbols   int // sum of edge lengths
	MaxDepth  int // deepest node level, roots are at 1
}

// Stats walks the whole tree.
func (t *Trie[K, V]) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	for _, n := range t.roots {
		n.stats(&s, 1)
	}
	return s
}

func (n *node[K, V]) stats(s *Stats, depth int) {
	s.Nodes++
	s.Symbols += len(n.edge)
	if n.terminal {
		s.Terminals++
	} else {
		s.Branches++
	}
	s.MaxDepth = max(s.MaxDepth, depth)
	for _, cn := range n.children {
		cn.stats(s, depth+1)
	}
}
