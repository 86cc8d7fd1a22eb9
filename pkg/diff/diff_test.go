package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysIdenticalValues(t *testing.T) {
	t.Parallel()

	require.Empty(t, Keys("2024-03-01,2024-03-15", "2024-03-01,2024-03-15"))
	require.Empty(t, Keys("2024-03-01, 2024-03-15", "2024-03-01,2024-03-15"), "whitespace around keys is ignored")
	require.Empty(t, Keys("", " "))
}

func TestKeysDropsDuplicates(t *testing.T) {
	t.Parallel()

	got := Keys("2024-03-15,2024-03-01,2024-03-15", "2024-03-01,2024-03-15")
	require.Equal(t, "- 2024-03-15\n  2024-03-01\n  2024-03-15\n", got)
}

func TestKeysReplacement(t *testing.T) {
	t.Parallel()

	require.Equal(t, "- 2024\n+ 2025\n", Keys("2024", "2025"))
	require.Equal(t, "+ 09:30\n", Keys("", "09:30"))
}
