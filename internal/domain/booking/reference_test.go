package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferenceFormat(t *testing.T) {
	ref := GenerateReference()

	assert.True(t, strings.HasPrefix(ref, "BK"))
	// "BK" + 14-digit timestamp + 6-char suffix.
	require.Len(t, ref, 22)

	suffix := ref[16:]
	assert.Equal(t, strings.ToUpper(suffix), suffix)
}

func TestGenerateReferenceUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
