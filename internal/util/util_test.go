package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCode(t *testing.T) {
	t.Run("generates code of requested length", func(t *testing.T) {
		code, err := RandomCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
	})

	t.Run("uses only the allowed charset", func(t *testing.T) {
		code, err := RandomCode(64)
		require.NoError(t, err)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeCharset, r), "unexpected rune %q", r)
		}
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := RandomCode(0)
		assert.Error(t, err)
	})

	t.Run("codes differ across calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 20 {
			code, err := RandomCode(10)
			require.NoError(t, err)
			seen[code] = struct{}{}
		}
		assert.Len(t, seen, 20)
	})
}
