package cookie

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocument(t *testing.T) (*Document, *time.Time) {
	t.Helper()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d := NewDocument()
	d.SetClock(func() time.Time { return now })

	return d, &now
}

func TestDocument(t *testing.T) {
	t.Run("Assign and read", func(t *testing.T) {
		d, _ := setupDocument(t)

		require.NoError(t, d.SetCookie("a=1; path=/"))
		require.NoError(t, d.SetCookie("b=2"))
		assert.Equal(t, "a=1; b=2", d.Cookie())
	})

	t.Run("Overwrite keeps position", func(t *testing.T) {
		d, _ := setupDocument(t)

		require.NoError(t, d.SetCookie("a=1; path=/"))
		require.NoError(t, d.SetCookie("b=2; path=/"))
		require.NoError(t, d.SetCookie("a=3; path=/"))
		assert.Equal(t, "a=3; b=2", d.Cookie())
	})

	t.Run("Past expiry removes", func(t *testing.T) {
		d, _ := setupDocument(t)

		require.NoError(t, d.SetCookie("a=1; path=/"))
		require.NoError(t, d.SetCookie("a=; path=/; expires=Thu, 01 Jan 1970 00:00:00 GMT"))
		assert.Empty(t, d.Cookie())
	})

	t.Run("Max-Age", func(t *testing.T) {
		d, now := setupDocument(t)

		require.NoError(t, d.SetCookie("a=1; Max-Age=60"))
		assert.Equal(t, "a=1", d.Cookie())

		*now = now.Add(2 * time.Minute)
		assert.Empty(t, d.Cookie())

		require.NoError(t, d.SetCookie("b=1"))
		require.NoError(t, d.SetCookie("b=1; Max-Age=0"))
		assert.Empty(t, d.Cookie())
	})

	t.Run("Cookies expire with time", func(t *testing.T) {
		d, now := setupDocument(t)

		expires := now.Add(time.Hour).Format(http.TimeFormat)
		require.NoError(t, d.SetCookie("a=1; path=/; expires="+expires))
		require.NoError(t, d.SetCookie("b=2; path=/"))
		assert.Equal(t, "a=1; b=2", d.Cookie())

		*now = now.Add(2 * time.Hour)
		assert.Equal(t, "b=2", d.Cookie())
		assert.Len(t, d.Cookies(), 1)
	})

	t.Run("Invalid line", func(t *testing.T) {
		d, _ := setupDocument(t)

		assert.ErrorIs(t, d.SetCookie("=nameless"), ErrInvalidCookie)
		assert.ErrorIs(t, d.SetCookie("bad name=1"), ErrInvalidCookie)
	})

	t.Run("Load request header", func(t *testing.T) {
		d, _ := setupDocument(t)

		require.NoError(t, d.Load("a=1; b=2"))
		assert.Equal(t, "a=1; b=2", d.Cookie())

		cookies := d.Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "/", cookies[0].Path)
	})
}
