package cache_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/halfspace"
)

// stores returns a fresh in-memory badger store and a Memory store.
func stores(t *testing.T) map[string]cache.Store {
	t.Helper()
	b, err := cache.NewBadger(cache.BadgerOptions{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return map[string]cache.Store{"badger": b, "memory": cache.NewMemory()}
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := cache.Key{"zonotope", "volume", "abc"}

			_, err := s.Get(ctx, key)
			require.ErrorIs(t, err, cache.ErrNotFound)

			require.NoError(t, s.Set(ctx, key, []byte("hello")))
			got, err := s.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(got))

			require.NoError(t, s.Set(ctx, key, []byte("world")))
			got, err = s.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, "world", string(got))

			require.NoError(t, s.Delete(ctx, key))
			require.NoError(t, s.Delete(ctx, key), "deleting a missing key is not an error")
			_, err = s.Get(ctx, key)
			require.ErrorIs(t, err, cache.ErrNotFound)
		})
	}
}

func TestStore_ClearByPrefix(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, cache.Key{"zonotope", "volume", "a"}, []byte("1")))
			require.NoError(t, s.Set(ctx, cache.Key{"zonotope", "volume", "b"}, []byte("2")))
			require.NoError(t, s.Set(ctx, cache.Key{"zonotope", "volumes", "c"}, []byte("3")))
			require.NoError(t, s.Set(ctx, cache.Key{"other", "x"}, []byte("4")))

			n, err := s.Clear(ctx, cache.Key{"zonotope", "volume"})
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			_, err = s.Get(ctx, cache.Key{"zonotope", "volumes", "c"})
			require.NoError(t, err, "prefix must stop at a segment boundary")

			n, err = s.Clear(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
		})
	}
}

func TestVolumeRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := cache.GetVolume(ctx, s, "d1")
			require.ErrorIs(t, err, cache.ErrNotFound)

			v := big.NewRat(-7, 12)
			require.NoError(t, cache.PutVolume(ctx, s, "d1", v))
			got, err := cache.GetVolume(ctx, s, "d1")
			require.NoError(t, err)
			assert.Zero(t, v.Cmp(got))
		})
	}
}

func TestHalfspacesRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	hs := []halfspace.Hyperplane[*big.Int]{
		{Offset: big.NewInt(0), Normal: []*big.Int{big.NewInt(0), big.NewInt(1)}, Combination: []int{0}},
		{Offset: huge, Normal: []*big.Int{big.NewInt(-1), big.NewInt(0)}, Combination: []int{1}},
	}
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, cache.PutHalfspaces(ctx, s, "d2", true, hs))

			_, err := cache.GetHalfspaces(ctx, s, "d2", false)
			require.ErrorIs(t, err, cache.ErrNotFound, "lists with and without combinations are distinct")

			got, err := cache.GetHalfspaces(ctx, s, "d2", true)
			require.NoError(t, err)
			require.Len(t, got, 2)
			for i := range hs {
				assert.Zero(t, hs[i].Offset.Cmp(got[i].Offset))
				assert.Equal(t, hs[i].Combination, got[i].Combination)
				for r := range hs[i].Normal {
					assert.Zero(t, hs[i].Normal[r].Cmp(got[i].Normal[r]))
				}
			}
		})
	}
}

func TestRecords_Corrupt(t *testing.T) {
	ctx := context.Background()
	s := cache.NewMemory()
	require.NoError(t, s.Set(ctx, cache.VolumeKey("bad"), []byte{0xc1}))
	_, err := cache.GetVolume(ctx, s, "bad")
	assert.ErrorIs(t, err, cache.ErrCorrupt)

	require.NoError(t, s.Set(ctx, cache.HalfspacesKey("bad", false), []byte("not msgpack")))
	_, err = cache.GetHalfspaces(ctx, s, "bad", false)
	assert.ErrorIs(t, err, cache.ErrCorrupt)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "zonotope:volume:x", cache.VolumeKey("x").String())
	assert.Equal(t, "zonotope:halfspaces:x", cache.HalfspacesKey("x", false).String())
	assert.Equal(t, "zonotope:halfspaces+comb:x", cache.HalfspacesKey("x", true).String())
}

func TestNewBadger_RequiresDir(t *testing.T) {
	_, err := cache.NewBadger(cache.BadgerOptions{})
	assert.Error(t, err)

	dir := t.TempDir()
	s, err := cache.NewBadger(cache.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, cache.PutVolume(context.Background(), s, "p", big.NewRat(3, 1)))
	require.NoError(t, s.Close())

	// reopen: the value survived
	s, err = cache.NewBadger(cache.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	defer s.Close()
	got, err := cache.GetVolume(context.Background(), s, "p")
	require.NoError(t, err)
	assert.Equal(t, "3", got.RatString())
}
