// Package store contiene los cuatro contenedores de estado de la tienda
// (ajustes, directorio, catálogo y carrito). Cada uno vive en memoria y refleja
// su snapshot completo en un repository.SnapshotStore después de cada mutación.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/jhoicas/burger-house/pkg/logger"
)

// Claves persistidas, una por store.
const (
	KeySettings = "bh_store_settings"
	KeyUsers    = "bh_users_db"
	KeyOrders   = "bh_orders_db"
	KeyMenu     = "bh_menu_db"
	KeyCart     = "bh_cart_cache"
	KeySession  = "bh_current_user"
)

// WriteObserver recibe el resultado de cada escritura del espejo (métricas).
type WriteObserver interface {
	ObserveWrite(key string, err error)
}

// Mirror escribe snapshots en el SnapshotStore (write-through, sin lotes).
// Un fallo de escritura se registra y se ignora: el estado en memoria manda.
type Mirror struct {
	kv       repository.SnapshotStore
	prefix   string
	log      *logger.Logger
	observer WriteObserver
}

// NewMirror construye el espejo. log y observer pueden ser nil.
func NewMirror(kv repository.SnapshotStore, prefix string, log *logger.Logger, observer WriteObserver) *Mirror {
	if log == nil {
		log = logger.Nop()
	}
	return &Mirror{kv: kv, prefix: prefix, log: log.Named("mirror"), observer: observer}
}

func (m *Mirror) key(k string) string { return m.prefix + k }

// load lee un snapshot. Un valor corrupto es fatal para el store que lo pide.
func (m *Mirror) load(ctx context.Context, key string, dest any) (bool, error) {
	found, err := m.kv.Load(ctx, m.key(key), dest)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptSnapshot) {
			return false, err
		}
		return false, fmt.Errorf("leer snapshot %s: %w", key, err)
	}
	return found, nil
}

func (m *Mirror) write(ctx context.Context, key string, value any) {
	err := m.kv.Save(ctx, m.key(key), value)
	if err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("no se pudo reflejar el snapshot; se conserva el estado en memoria")
	}
	if m.observer != nil {
		m.observer.ObserveWrite(key, err)
	}
}

func (m *Mirror) remove(ctx context.Context, key string) {
	err := m.kv.Delete(ctx, m.key(key))
	if err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("no se pudo borrar la clave del espejo")
	}
	if m.observer != nil {
		m.observer.ObserveWrite(key, err)
	}
}
