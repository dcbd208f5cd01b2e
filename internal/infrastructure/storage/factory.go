// Package storage elige el backend del espejo clave-valor según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	"github.com/jhoicas/burger-house/internal/infrastructure/postgres"
	"github.com/jhoicas/burger-house/internal/infrastructure/redis"
	"github.com/jhoicas/burger-house/pkg/config"
	"github.com/jhoicas/burger-house/pkg/logger"
)

// Backend espejo abierto más su función de cierre.
type Backend struct {
	Store repository.SnapshotStore
	Close func()
	// Postgres solo está presente con el driver postgres.
	Postgres *postgres.KVStore
}

// Open conecta el driver configurado. Para postgres además crea la tabla kv_store.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("STORAGE_DRIVER=memory: el estado se pierde al reiniciar")
		return &Backend{Store: memory.NewKVStore(), Close: func() {}}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conectar postgres: %w", err)
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("espejo en PostgreSQL (kv_store)")
		return &Backend{Store: kv, Close: pool.Close, Postgres: kv}, nil

	case config.StorageRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("conectar redis: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("espejo en Redis")
		return &Backend{Store: redis.NewKVStore(client), Close: func() { _ = client.Close() }}, nil
	}
	return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}
