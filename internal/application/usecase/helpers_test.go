package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/logger"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	kv       *memory.KVStore
	settings *store.SettingsStore
	catalog  *store.CatalogStore
	cart     *store.CartStore
	dir      *store.DirectoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	kv := memory.NewKVStore()
	m := store.NewMirror(kv, "", logger.Nop(), nil)

	settings, err := store.NewSettingsStore(ctx, m)
	require.NoError(t, err)
	catalog, err := store.NewCatalogStore(ctx, m)
	require.NoError(t, err)
	cart, err := store.NewCartStore(ctx, m)
	require.NoError(t, err)
	dir, err := store.NewDirectoryStore(ctx, m)
	require.NoError(t, err)
	return &fixture{kv: kv, settings: settings, catalog: catalog, cart: cart, dir: dir}
}

var (
	superActor   = access.Actor{UserID: "super-id", Name: "Master Super", Role: entity.RoleSuperAdmin}
	adminActor   = access.Actor{UserID: "admin-id", Name: "Store Admin", Role: entity.RoleAdmin}
	managerActor = access.Actor{UserID: "manager-id", Name: "Day Manager", Role: entity.RoleManager}
	customer     = access.Actor{UserID: "cust-1", Name: "luis", Role: entity.RoleUser}
)
