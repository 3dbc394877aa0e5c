package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("S3nhaForte!")
	require.NoError(t, err)
	require.NotEqual(t, "S3nhaForte!", hashed)

	require.True(t, Compare(hashed, "S3nhaForte!"))
	require.False(t, Compare(hashed, "senha-errada"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("mesma-senha")
	require.NoError(t, err)
	second, err := Hash("mesma-senha")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	require.NotEqual(t, first, second)
	require.True(t, Compare(first, "mesma-senha"))
	require.True(t, Compare(second, "mesma-senha"))
}
