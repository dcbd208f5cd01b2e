package store_test

import (
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/logger"
)

type writeRecorder struct {
	writes   map[string]int
	failures int
}

func (r *writeRecorder) ObserveWrite(key string, err error) {
	if r.writes == nil {
		r.writes = map[string]int{}
	}
	r.writes[key]++
	if err != nil {
		r.failures++
	}
}

func newMirror(kv *memory.KVStore) *store.Mirror {
	return store.NewMirror(kv, "", logger.Nop(), nil)
}
