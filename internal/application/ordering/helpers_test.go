package ordering_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/logger"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog  *store.CatalogStore
	cart     *store.CartStore
	dir      *store.DirectoryStore
	settings *store.SettingsStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	m := store.NewMirror(memory.NewKVStore(), "", logger.Nop(), nil)
	settings, err := store.NewSettingsStore(ctx, m)
	require.NoError(t, err)
	catalog, err := store.NewCatalogStore(ctx, m)
	require.NoError(t, err)
	cart, err := store.NewCartStore(ctx, m)
	require.NoError(t, err)
	dir, err := store.NewDirectoryStore(ctx, m)
	require.NoError(t, err)
	return &fixture{catalog: catalog, cart: cart, dir: dir, settings: settings}
}

// addToCart agrega n unidades del ítem id del catálogo.
func (f *fixture) addToCart(t *testing.T, id, n int) {
	t.Helper()
	item, ok := f.catalog.Item(id)
	require.True(t, ok)
	for range n {
		f.cart.Add(context.Background(), item)
	}
}

func (f *fixture) customer(t *testing.T, email string) access.Actor {
	t.Helper()
	res := f.dir.Login(context.Background(), email, "secreto")
	require.NotEmpty(t, res.Profile.ID)
	return access.ActorFor(res.Profile)
}

type observerRecorder struct {
	mu       sync.Mutex
	placed   []bool
	statuses []string
}

func (r *observerRecorder) OrderPlaced(guest bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed = append(r.placed, guest)
}

func (r *observerRecorder) OrderStatusChanged(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

// sequence devuelve los códigos en orden y repite el último.
func sequence(codes ...string) func() string {
	i := 0
	return func() string {
		c := codes[min(i, len(codes)-1)]
		i++
		return c
	}
}
