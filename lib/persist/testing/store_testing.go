package testing

import (
	"errors"
	"math"
	"testing"

	"github.com/ValentinKolb/pKV/lib/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreTests runs the conformance test suite for an IStore implementation.
// factory must return a new, empty store on every call.
func RunStoreTests(t *testing.T, name string, factory persist.StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("UnsetKeys", func(t *testing.T) {
			testUnsetKeys(t, factory())
		})

		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("Idempotence", func(t *testing.T) {
			testIdempotence(t, factory())
		})

		t.Run("IntRoundTrip", func(t *testing.T) {
			testIntRoundTrip(t, factory())
		})

		t.Run("IntFallback", func(t *testing.T) {
			testIntFallback(t, factory())
		})

		t.Run("SetValues", func(t *testing.T) {
			testSetValues(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("KeysAndAll", func(t *testing.T) {
			testKeysAndAll(t, factory())
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})

		t.Run("InvalidUTF8", func(t *testing.T) {
			testInvalidUTF8(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testUnsetKeys(t *testing.T, store persist.IStore) {
	for _, key := range []string{"never-set", "WindowWidth", ""} {
		value, err := store.GetValue(key)
		require.NoError(t, err)
		assert.Equal(t, "", value, "key %q", key)

		i, err := store.GetIntValue(key)
		require.NoError(t, err)
		assert.Equal(t, 0, i, "key %q", key)

		found, err := store.Has(key)
		require.NoError(t, err)
		assert.False(t, found, "key %q", key)
	}
}

func testSetGet(t *testing.T, store persist.IStore) {
	require.NoError(t, store.SetValue("LastUser", "alice"))

	value, err := store.GetValue("LastUser")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	found, err := store.Has("LastUser")
	require.NoError(t, err)
	assert.True(t, found)

	value, err = store.GetValue("OtherKey")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func testOverwrite(t *testing.T, store persist.IStore) {
	require.NoError(t, store.SetValue("other", "unchanged"))
	require.NoError(t, store.SetValue("key", "a"))
	require.NoError(t, store.SetValue("key", "b"))

	value, err := store.GetValue("key")
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	value, err = store.GetValue("other")
	require.NoError(t, err)
	assert.Equal(t, "unchanged", value)
}

func testIdempotence(t *testing.T, store persist.IStore) {
	require.NoError(t, store.SetValue("key", "value"))
	require.NoError(t, store.SetValue("key", "value"))

	value, err := store.GetValue("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"key"}, keys)
}

func testIntRoundTrip(t *testing.T, store persist.IStore) {
	for _, n := range []int{0, 1, -1, 1024, -987654, math.MaxInt32, math.MinInt32, math.MaxInt, math.MinInt} {
		require.NoError(t, store.SetIntValue("n", n))

		i, err := store.GetIntValue("n")
		require.NoError(t, err)
		assert.Equal(t, n, i)

		value, err := store.GetValue("n")
		require.NoError(t, err)
		assert.Equal(t, persist.FormatInt(n), value, "integers are stored as decimal strings")
	}
}

func testIntFallback(t *testing.T, store persist.IStore) {
	tests := map[string]int{
		"":                        0,
		"abc":                     0,
		"1.5":                     0,
		"12abc":                   0,
		"0x10":                    0,
		"99999999999999999999999": 0,
		" 42 ":                    42,
		"+7":                      7,
		"-13":                     -13,
	}
	for stored, expected := range tests {
		require.NoError(t, store.SetValue("n", stored))

		i, err := store.GetIntValue("n")
		require.NoError(t, err)
		assert.Equal(t, expected, i, "stored value %q", stored)
	}
}

func testSetValues(t *testing.T, store persist.IStore) {
	require.NoError(t, store.SetValue("a", "old"))
	require.NoError(t, store.SetValue("keep", "kept"))
	require.NoError(t, store.SetValues(map[string]string{
		"a": "new",
		"b": "added",
	}))
	require.NoError(t, store.SetValues(nil))

	all, err := store.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"a":    "new",
		"b":    "added",
		"keep": "kept",
	}, all)
}

func testDelete(t *testing.T, store persist.IStore) {
	require.NoError(t, store.SetValue("a", "1"))
	require.NoError(t, store.SetValue("b", "2"))

	require.NoError(t, store.Delete("a"))
	require.NoError(t, store.Delete("not-there"))

	found, err := store.Has("a")
	require.NoError(t, err)
	assert.False(t, found)

	value, err := store.GetValue("a")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	value, err = store.GetValue("b")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}

func testKeysAndAll(t *testing.T, store persist.IStore) {
	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, k := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.SetValue(k, k+"-value"))
	}

	keys, err = store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "mid-value", all["mid"])

	// the returned map must be a copy
	all["alpha"] = "changed"
	delete(all, "zeta")

	value, err := store.GetValue("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha-value", value)

	found, err := store.Has("zeta")
	require.NoError(t, err)
	assert.True(t, found)
}

func testEdgeCases(t *testing.T, store persist.IStore) {
	// keys are case sensitive
	require.NoError(t, store.SetValue("Width", "upper"))
	require.NoError(t, store.SetValue("width", "lower"))

	value, err := store.GetValue("Width")
	require.NoError(t, err)
	assert.Equal(t, "upper", value)

	value, err = store.GetValue("width")
	require.NoError(t, err)
	assert.Equal(t, "lower", value)

	// empty values are stored and found
	require.NoError(t, store.SetValue("empty", ""))
	found, err := store.Has("empty")
	require.NoError(t, err)
	assert.True(t, found)

	// the empty key is a regular key
	require.NoError(t, store.SetValue("", "empty key"))
	value, err = store.GetValue("")
	require.NoError(t, err)
	assert.Equal(t, "empty key", value)

	// special characters survive
	special := "line1\nline2\t\"quoted\" {json} ✓"
	require.NoError(t, store.SetValue("special/key:ü", special))
	value, err = store.GetValue("special/key:ü")
	require.NoError(t, err)
	assert.Equal(t, special, value)
}

func testInvalidUTF8(t *testing.T, store persist.IStore) {
	requireInvalidValue := func(err error) {
		t.Helper()
		require.Error(t, err)
		var perr *persist.Error
		require.True(t, errors.As(err, &perr), "expected *persist.Error, got %T", err)
		assert.Equal(t, persist.RetCInvalidValue, perr.Code)
	}

	// values that can not be stored unchanged are rejected instead of being altered
	requireInvalidValue(store.SetValue("k", "a\xffb"))
	requireInvalidValue(store.SetValue("\xff", "value"))

	found, err := store.Has("k")
	require.NoError(t, err)
	assert.False(t, found)

	// a batch with one invalid pair stores nothing
	requireInvalidValue(store.SetValues(map[string]string{
		"valid":   "1",
		"invalid": "\xc3\x28",
	}))
	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	// valid multi-byte text still round trips
	require.NoError(t, store.SetValue("k", "a\u00e9b ✓"))
	value, err := store.GetValue("k")
	require.NoError(t, err)
	assert.Equal(t, "a\u00e9b ✓", value)
}
