package store

import (
	"context"
	"sync"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogStore)(nil)

// CatalogStore dueño exclusivo de la lista de MenuItem.
type CatalogStore struct {
	mu     sync.RWMutex
	mirror *Mirror
	items  []entity.MenuItem
}

// NewCatalogStore carga el catálogo persistido o el menú por defecto.
func NewCatalogStore(ctx context.Context, mirror *Mirror) (*CatalogStore, error) {
	s := &CatalogStore{mirror: mirror}
	var loaded []entity.MenuItem
	found, err := mirror.load(ctx, KeyMenu, &loaded)
	if err != nil {
		return nil, err
	}
	if found {
		s.items = loaded
	} else {
		s.items = DefaultMenu()
	}
	if s.items == nil {
		s.items = []entity.MenuItem{}
	}
	s.persist(ctx)
	return s, nil
}

func (s *CatalogStore) persist(ctx context.Context) {
	s.mirror.write(ctx, KeyMenu, s.items)
}

// Items copia del catálogo en su orden actual.
func (s *CatalogStore) Items() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.CloneMenuItems(s.items)
}

// Item busca por id.
func (s *CatalogStore) Item(id int) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return entity.MenuItem{}, false
}

// Add agrega el ítem ignorando su ID: se asigna max(ids)+1, o 1 si el catálogo está vacío.
func (s *CatalogStore) Add(ctx context.Context, item entity.MenuItem) entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 1
	for _, it := range s.items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	item = item.Clone()
	item.ID = next
	s.items = append(s.items, item)
	s.persist(ctx)
	return item.Clone()
}

// Update reemplaza el ítem con el mismo id. Devuelve false (sin cambios) si no existe.
func (s *CatalogStore) Update(ctx context.Context, item entity.MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item.Clone()
			s.persist(ctx)
			return true
		}
	}
	return false
}

// Delete elimina por id. Los pedidos ya registrados conservan su copia.
func (s *CatalogStore) Delete(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}
