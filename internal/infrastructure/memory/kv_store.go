// Package memory implementa el espejo clave-valor en memoria del proceso.
// Es el driver por defecto y el fixture de los tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

var _ repository.SnapshotStore = (*KVStore)(nil)

// KVStore guarda cada snapshot como JSON serializado, igual que los backends remotos.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites hace fallar Save y Delete (tests de escrituras ignoradas).
	FailWrites bool
}

// NewKVStore construye un espejo vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Load decodifica el valor de key en dest.
func (s *KVStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, key, err)
	}
	return true, nil
}

// Save reemplaza el valor de key.
func (s *KVStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return fmt.Errorf("escritura deshabilitada: %s", key)
	}
	s.data[key] = raw
	return nil
}

// Delete elimina key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return fmt.Errorf("escritura deshabilitada: %s", key)
	}
	delete(s.data, key)
	return nil
}

// Raw devuelve el JSON almacenado para key.
func (s *KVStore) Raw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

// SetRaw guarda bytes sin validar (simula un snapshot escrito por otro proceso).
func (s *KVStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), raw...)
}

// Keys claves presentes, ordenadas.
func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
