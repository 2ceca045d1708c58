package local

import (
	"path/filepath"
	"testing"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "local.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestStore(t *testing.T) {
	t.Run("Set, overwrite and Get", func(t *testing.T) {
		s, _ := setupStore(t)
		assert.Equal(t, backend.Local, s.Kind())

		require.NoError(t, s.SetItem("a.x", "1", nil))
		require.NoError(t, s.SetItem("a.x", "2", nil))

		value, ok, err := s.GetItem("a.x")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2", value)

		_, ok, err = s.GetItem("a.missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Remove", func(t *testing.T) {
		s, _ := setupStore(t)
		require.NoError(t, s.SetItem("k", "v", nil))
		require.NoError(t, s.RemoveItem("k"))
		require.NoError(t, s.RemoveItem("k"))

		_, ok, err := s.GetItem("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Keys with wildcard characters in prefix", func(t *testing.T) {
		s, _ := setupStore(t)
		for _, k := range []string{"a_b.1", "axb.1", "a%.1", "a_b.2", "a_b"} {
			require.NoError(t, s.SetItem(k, "v", nil))
		}

		keys, err := s.Keys("a_b.")
		require.NoError(t, err)
		assert.Equal(t, []string{"a_b.1", "a_b.2"}, keys)

		keys, err = s.Keys("a%.")
		require.NoError(t, err)
		assert.Equal(t, []string{"a%.1"}, keys)
	})

	t.Run("Persists across reopen", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.SetItem("k", "v", nil))
		require.NoError(t, s.Close())

		reopened, err := Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		value, ok, err := reopened.GetItem("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", value)
	})

	t.Run("Closed store", func(t *testing.T) {
		s, _ := setupStore(t)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.SetItem("k", "v", nil), backend.ErrClosed)
		_, _, err := s.GetItem("k")
		assert.ErrorIs(t, err, backend.ErrClosed)
		_, err = s.Keys("")
		assert.ErrorIs(t, err, backend.ErrClosed)
	})

	t.Run("In-memory database", func(t *testing.T) {
		s, err := Open(":memory:")
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.SetItem("k", "v", nil))
		keys, err := s.Keys("")
		require.NoError(t, err)
		assert.Equal(t, []string{"k"}, keys)
	})
}
