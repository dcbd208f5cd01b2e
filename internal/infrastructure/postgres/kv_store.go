package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Asegura que KVStore implementa repository.SnapshotStore.
var _ repository.SnapshotStore = (*KVStore)(nil)

const schemaKVStore = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// querier subconjunto de pgxpool.Pool que usa el adaptador (permite pasar una tx).
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVStore espejo de snapshots sobre la tabla kv_store (una fila por clave, valor JSONB).
type KVStore struct {
	db querier
}

// NewKVStore construye el adaptador sobre el pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{db: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaKVStore); err != nil {
		return fmt.Errorf("crear kv_store: %w", err)
	}
	return nil
}

// Load lee la fila de key y decodifica su JSON en dest.
func (s *KVStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get kv %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, key, err)
	}
	return true, nil
}

// Save hace upsert de la fila de key.
func (s *KVStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.db.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("upsert kv %s: %w", key, err)
	}
	return nil
}

// Delete elimina la fila de key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete kv %s: %w", key, err)
	}
	return nil
}

// Revenue suma en SQL los totales no cancelados del snapshot de pedidos. Sirve para
// cotejar el reporte en memoria contra lo que quedó persistido.
func (s *KVStore) Revenue(ctx context.Context, ordersKey string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM((o->>'total')::numeric), 0)
		FROM kv_store, jsonb_array_elements(value) AS o
		WHERE key = $1 AND o->>'status' <> 'cancelled'`
	var total decimal.Decimal
	if err := s.db.QueryRow(ctx, query, ordersKey).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("revenue kv %s: %w", ordersKey, err)
	}
	return total, nil
}
