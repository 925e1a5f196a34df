// file:ptrie/pkg/x_tree/util.go
package x_tree

import (
	"cmp"

	"github.com/rskv-p/ptrie/constant"
)

//---------------------
// Utilities
//---------------------

// commonPrefixLen returns length of common prefix.
func commonPrefixLen[K cmp.Ordered](s1, s2 []K) int {
	limit := min(len(s1), len(s2))
	var i int
	for ; i < limit; i++ {
		if s1[i] != s2[i] {
			break
		}
	}
	return i
}

// hasPrefix reports whether s starts with edge.
func hasPrefix[K cmp.Ordered](s, edge []K) bool {
	return len(s) >= len(edge) && commonPrefixLen(s, edge) == len(edge)
}

// copySymbols returns a new copy of the symbol slice.
func copySymbols[K cmp.Ordered](src []K) []K {
	if len(src) == 0 {
		return nil
	}
	dst := make([]K, len(src))
	copy(dst, src)
	return dst
}

// mustKey panics on an empty key.
func mustKey[K cmp.Ordered](key []K) {
	if len(key) == 0 {
		panic(constant.ErrEmptyKey)
	}
}
