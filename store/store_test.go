package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStoreContract(t *testing.T, st Store) {
	t.Helper()

	_, err := st.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Set("cart:u1", []byte(`[{"id":"1"}]`)))
	v, err := st.Get("cart:u1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	// Overwrite
	require.NoError(t, st.Set("cart:u1", []byte(`[]`)))
	v, err = st.Get("cart:u1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, st.Set("user:1", []byte(`{}`)))
	require.NoError(t, st.Set("user:2", []byte(`{}`)))
	keys, err := st.Keys("user:")
	require.NoError(t, err)
	assert.Equal(t, []string{"user:1", "user:2"}, keys)

	require.NoError(t, st.Delete("cart:u1"))
	_, err = st.Get("cart:u1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, st.Delete("cart:u1"))
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemory())
}

func TestPebbleStore(t *testing.T) {
	st, err := OpenPebble(t.TempDir())
	require.NoError(t, err)
	defer st.Close()
	runStoreContract(t, st)
}

func TestPebbleSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := OpenPebble(dir)
	require.NoError(t, err)
	require.NoError(t, st.Set("cart:u1", []byte(`[{"id":"1","quantity":2}]`)))
	require.NoError(t, st.Close())

	st, err = OpenPebble(dir)
	require.NoError(t, err)
	defer st.Close()
	v, err := st.Get("cart:u1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","quantity":2}]`, string(v))
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	st := NewMemory()
	require.NoError(t, st.Set("k", []byte("abc")))
	v, err := st.Get("k")
	require.NoError(t, err)
	v[0] = 'z'

	again, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
