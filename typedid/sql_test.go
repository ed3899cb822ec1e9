package typedid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("integer binds as int64", func(t *testing.T) {
		v, err := New[customer](uint32(42)).Value()
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("string binds as string", func(t *testing.T) {
		v, err := New[customer]("abc").Value()
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("value's own valuer is used", func(t *testing.T) {
		u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		v, err := New[customer](u).Value()
		require.NoError(t, err)

		want, err := u.Value()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	})
}

func TestScan(t *testing.T) {
	t.Run("int64 column into int64 id", func(t *testing.T) {
		var id ID[int64, customer]
		require.NoError(t, id.Scan(int64(42)))
		assert.Equal(t, int64(42), id.Unwrap())
	})

	t.Run("int64 column into narrower integer id", func(t *testing.T) {
		var id customerID
		require.NoError(t, id.Scan(int64(42)))
		assert.Equal(t, uint32(42), id.Unwrap())
	})

	t.Run("text column into string id", func(t *testing.T) {
		var id ID[string, customer]
		require.NoError(t, id.Scan("abc"))
		assert.Equal(t, "abc", id.Unwrap())
	})

	t.Run("bytes column into string id", func(t *testing.T) {
		var id ID[string, customer]
		require.NoError(t, id.Scan([]byte("abc")))
		assert.Equal(t, "abc", id.Unwrap())
	})

	t.Run("value's own scanner is used", func(t *testing.T) {
		u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		var id ID[uuid.UUID, customer]
		require.NoError(t, id.Scan(u.String()))
		assert.Equal(t, u, id.Unwrap())
	})

	t.Run("null column leaves the zero value", func(t *testing.T) {
		id := New[customer](uint32(42))
		require.NoError(t, id.Scan(nil))
		assert.True(t, id.IsZero())
	})

	t.Run("mismatched column type fails", func(t *testing.T) {
		var id customerID
		assert.Error(t, id.Scan(true))
	})

	t.Run("negative column value into unsigned id fails", func(t *testing.T) {
		var id customerID
		err := id.Scan(int64(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value out of range")
		assert.True(t, id.IsZero())
	})

	t.Run("oversized column value fails", func(t *testing.T) {
		var id customerID
		err := id.Scan(int64(1) << 40)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value out of range")
	})

	t.Run("oversized unsigned column value fails", func(t *testing.T) {
		var id ID[int8, customer]
		err := id.Scan(uint64(200))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value out of range")
	})

	t.Run("fractional column value fails", func(t *testing.T) {
		var id customerID
		err := id.Scan(float64(1.9))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fractional value")
		assert.True(t, id.IsZero())
	})

	t.Run("integral float column value scans", func(t *testing.T) {
		var id customerID
		require.NoError(t, id.Scan(float64(2)))
		assert.Equal(t, uint32(2), id.Unwrap())
	})

	t.Run("negative float into unsigned id fails", func(t *testing.T) {
		var id customerID
		err := id.Scan(float64(-2))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value out of range")
	})
}

func TestValueScanRoundTrip(t *testing.T) {
	t.Run("id survives a bind and scan cycle", func(t *testing.T) {
		orig := New[customer](uint32(42))
		v, err := orig.Value()
		require.NoError(t, err)

		var loaded customerID
		require.NoError(t, loaded.Scan(v))
		assert.Equal(t, orig, loaded)
	})
}
