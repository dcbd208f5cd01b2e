package store

import (
	"context"
	"sync"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsStore)(nil)

// SettingsStore guarda el singleton StoreSettings.
type SettingsStore struct {
	mu       sync.RWMutex
	mirror   *Mirror
	settings entity.StoreSettings
}

// NewSettingsStore carga el snapshot persistido o arranca con los valores por defecto.
func NewSettingsStore(ctx context.Context, mirror *Mirror) (*SettingsStore, error) {
	s := &SettingsStore{mirror: mirror, settings: entity.DefaultStoreSettings()}
	var loaded entity.StoreSettings
	found, err := mirror.load(ctx, KeySettings, &loaded)
	if err != nil {
		return nil, err
	}
	if found {
		s.settings = loaded
	}
	mirror.write(ctx, KeySettings, s.settings)
	return s, nil
}

// Get devuelve los ajustes actuales.
func (s *SettingsStore) Get() entity.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update reemplaza el singleton completo y lo persiste. No valida.
func (s *SettingsStore) Update(ctx context.Context, next entity.StoreSettings) entity.StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
	s.mirror.write(ctx, KeySettings, s.settings)
	return s.settings
}
