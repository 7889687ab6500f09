package gopages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Collection_Len(t *testing.T) {
	assert.Equal(t, 0, Collection[string](nil).Len())
	assert.Equal(t, 3, Collection[int]{1, 2, 3}.Len())
}

func Test_Deps(t *testing.T) {
	deps := Deps{
		"notes":  Collection[int]{1, 2},
		"drafts": Collection[int]{},
		"broken": nil,
	}

	src, ok := deps.Dependency("notes")
	require.True(t, ok)
	assert.Equal(t, 2, src.Len())

	_, ok = deps.Dependency("posts")
	assert.False(t, ok)

	_, ok = deps.Dependency("broken")
	assert.False(t, ok, "nil source is treated as missing")

	assert.Equal(t, []string{"broken", "drafts", "notes"}, deps.Names())
}

func Test_Outputs_Attach(t *testing.T) {
	var outs Outputs
	require.NoError(t, outs.Attach(&Output{Path: "a"}))
	require.NoError(t, outs.Attach(&Output{Path: "b"}))

	assert.Equal(t, []string{"a", "b"}, outs.Paths())
}
