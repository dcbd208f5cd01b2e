package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestKVStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()

	require.NoError(t, kv.Save(ctx, "k", sample{Name: "zinger", Count: 2}))

	var got sample
	found, err := kv.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "zinger", Count: 2}, got)

	raw, ok := kv.Raw("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"zinger","count":2}`, string(raw))
}

func TestKVStore_LoadMissing(t *testing.T) {
	var got sample
	found, err := memory.NewKVStore().Load(context.Background(), "nada", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_LoadCorrupt(t *testing.T) {
	kv := memory.NewKVStore()
	kv.SetRaw("k", []byte("{no es json"))

	var got sample
	_, err := kv.Load(context.Background(), "k", &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorruptSnapshot))
}

func TestKVStore_DeleteAndFailWrites(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Save(ctx, "a", 1))
	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "a"), "borrar una clave inexistente no falla")
	assert.Empty(t, kv.Keys())

	kv.FailWrites = true
	assert.Error(t, kv.Save(ctx, "b", 2))
	assert.Empty(t, kv.Keys())
}
