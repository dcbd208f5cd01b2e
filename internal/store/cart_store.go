package store

import (
	"context"
	"sync"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.CartRepository = (*CartStore)(nil)

// CartStore carrito activo del perfil. Hay exactamente uno, con o sin sesión.
type CartStore struct {
	mu        sync.RWMutex
	mirror    *Mirror
	lines     []entity.CartLine
	lastAdded *entity.MenuItem // solo para la notificación; no se persiste
}

// NewCartStore carga el carrito persistido o arranca vacío.
func NewCartStore(ctx context.Context, mirror *Mirror) (*CartStore, error) {
	s := &CartStore{mirror: mirror, lines: []entity.CartLine{}}
	var loaded []entity.CartLine
	found, err := mirror.load(ctx, KeyCart, &loaded)
	if err != nil {
		return nil, err
	}
	if found && loaded != nil {
		s.lines = loaded
	}
	s.persist(ctx)
	return s, nil
}

func (s *CartStore) persist(ctx context.Context) {
	s.mirror.write(ctx, KeyCart, s.lines)
}

// Lines copia de las líneas actuales.
func (s *CartStore) Lines() []entity.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.CloneLines(s.lines)
}

// Add incrementa la cantidad si el ítem ya está en el carrito; si no, crea la línea con cantidad 1.
func (s *CartStore) Add(ctx context.Context, item entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := item.Clone()
	s.lastAdded = &last
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			s.persist(ctx)
			return
		}
	}
	s.lines = append(s.lines, entity.CartLine{MenuItem: item.Clone(), Quantity: 1})
	s.persist(ctx)
}

// Remove elimina la línea del ítem.
func (s *CartStore) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.persist(ctx)
}

// UpdateQuantity aplica delta con piso 1: nunca elimina la línea.
func (s *CartStore) UpdateQuantity(ctx context.Context, id int, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = max(1, s.lines[i].Quantity+delta)
		}
	}
	s.persist(ctx)
}

// Clear vacía el carrito.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []entity.CartLine{}
	s.persist(ctx)
}

// LastAdded último ítem agregado, hasta que se llame ClearNotification.
func (s *CartStore) LastAdded() (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastAdded == nil {
		return entity.MenuItem{}, false
	}
	return s.lastAdded.Clone(), true
}

// ClearNotification olvida el último ítem agregado.
func (s *CartStore) ClearNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAdded = nil
}

// TotalItems suma de cantidades (se recalcula en cada lectura).
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice suma de cantidad * precio efectivo (se recalcula en cada lectura).
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
