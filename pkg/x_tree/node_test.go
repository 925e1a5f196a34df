package x_tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertOps checks which structural case each insertion takes.
func TestInsertOps(t *testing.T) {
	var root *node[byte, int]
	steps := []struct {
		suffix string
		want   insertOp
	}{
		{"ester", opCreate},
		{"est", opDemote},
		{"eam", opSplit},
		{"eamwork", opCreate},
		{"e", opMark},
		{"est", opUpdate},
	}
	for i, st := range steps {
		var op insertOp
		root, op, _ = insert(root, []byte(st.suffix), i)
		assert.Equal(t, st.want, op, "step %d %q", i, st.suffix)
	}

	require.NotNil(t, root)
	assert.Equal(t, "e", string(root.edge))
	assert.True(t, root.terminal)
	assert.Equal(t, 4, root.value)
	assert.Equal(t, []byte{'a', 's'}, root.symbols())

	v, ok := root.get([]byte("est"))
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

// TestInsertOpString covers the op labels used in log events.
func TestInsertOpString(t *testing.T) {
	assert.Equal(t, "create", opCreate.String())
	assert.Equal(t, "split", opSplit.String())
	assert.Equal(t, "demote", opDemote.String())
	assert.Equal(t, "mark", opMark.String())
	assert.Equal(t, "update", opUpdate.String())
	assert.Equal(t, "unknown", insertOp(99).String())
}

// TestCommonPrefixLen covers the shared prefix helper.
func TestCommonPrefixLen(t *testing.T) {
	assert.Equal(t, 0, commonPrefixLen([]byte(""), []byte("abc")))
	assert.Equal(t, 2, commonPrefixLen([]byte("abx"), []byte("abc")))
	assert.Equal(t, 3, commonPrefixLen([]byte("abc"), []byte("abcdef")))
	assert.True(t, hasPrefix([]byte("abc"), []byte("ab")))
	assert.True(t, hasPrefix([]byte("abc"), nil))
	assert.False(t, hasPrefix([]byte("a"), []byte("ab")))
	assert.Nil(t, copySymbols([]byte{}))
}
