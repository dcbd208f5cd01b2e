package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

var _ repository.DirectoryRepository = (*DirectoryStore)(nil)

// DefaultMinAutoRegisterPassword largo mínimo de contraseña para el alta automática en login.
const DefaultMinAutoRegisterPassword = 5

// DirectoryOption configura un DirectoryStore.
type DirectoryOption func(*DirectoryStore)

// WithMinAutoRegisterPassword cambia el largo mínimo para el alta automática.
func WithMinAutoRegisterPassword(n int) DirectoryOption {
	return func(s *DirectoryStore) { s.minAutoRegister = n }
}

// WithUserIDGenerator reemplaza el generador de ids de usuario (tests).
func WithUserIDGenerator(gen func() string) DirectoryOption {
	return func(s *DirectoryStore) { s.newID = gen }
}

// DirectoryStore usuarios, puntero de sesión y libro de pedidos.
// Los pedidos se guardan del más reciente al más antiguo.
type DirectoryStore struct {
	mu      sync.RWMutex
	mirror  *Mirror
	users   []entity.UserProfile
	orders  []entity.Order
	session *entity.UserProfile

	minAutoRegister int
	newID           func() string
}

// NewDirectoryStore carga usuarios, pedidos y sesión. Si no hay usuarios persistidos
// arranca con el staff por defecto; si los hay pero falta el super-admin, lo inyecta.
func NewDirectoryStore(ctx context.Context, mirror *Mirror, opts ...DirectoryOption) (*DirectoryStore, error) {
	s := &DirectoryStore{
		mirror:          mirror,
		minAutoRegister: DefaultMinAutoRegisterPassword,
		newID:           func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	var users []entity.UserProfile
	found, err := mirror.load(ctx, KeyUsers, &users)
	if err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	if !found {
		users = DefaultStaff()
	}
	users = ensureSuperAdmin(users)
	for i := range users {
		if users[i].OrderHistory == nil {
			users[i].OrderHistory = []string{}
		}
	}
	s.users = users

	var orders []entity.Order
	if _, err := mirror.load(ctx, KeyOrders, &orders); err != nil {
		return nil, fmt.Errorf("cargar pedidos: %w", err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	s.orders = orders

	var session entity.UserProfile
	found, err = mirror.load(ctx, KeySession, &session)
	if err != nil {
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	if found && session.ID != "" {
		s.session = &session
	}

	s.persistUsers(ctx)
	s.persistOrders(ctx)
	return s, nil
}

// ensureSuperAdmin garantiza al menos un super-admin. Si el registro por defecto sigue
// en la lista (con otro rol) se le devuelve el rol; si no, se agrega de nuevo.
// Se aplica al cargar y después de cada cambio de staff.
func ensureSuperAdmin(users []entity.UserProfile) []entity.UserProfile {
	for _, u := range users {
		if u.Role == entity.RoleSuperAdmin {
			return users
		}
	}
	def := defaultSuperAdmin()
	for i := range users {
		if users[i].ID == def.ID {
			users[i].Role = entity.RoleSuperAdmin
			users[i].IsAdmin = true
			return users
		}
	}
	return append(users, def)
}

func (s *DirectoryStore) persistUsers(ctx context.Context) {
	s.mirror.write(ctx, KeyUsers, s.users)
}

func (s *DirectoryStore) persistOrders(ctx context.Context) {
	s.mirror.write(ctx, KeyOrders, s.orders)
}

func (s *DirectoryStore) setSession(ctx context.Context, u entity.UserProfile) {
	c := u.Clone()
	s.session = &c
	s.mirror.write(ctx, KeySession, c)
}

// refreshSession mantiene la copia de sesión alineada con el registro del usuario.
func (s *DirectoryStore) refreshSession(ctx context.Context) {
	if s.session == nil {
		return
	}
	if i := s.userIndex(s.session.ID); i >= 0 {
		s.setSession(ctx, s.users[i])
	}
}

func (s *DirectoryStore) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *DirectoryStore) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// ─── Sesión ──────────────────────────────────────────────────────────────────

// Login busca el primer usuario cuyo email o nombre coincide con identifier; la
// contraseña solo se compara si no está vacía. Sin coincidencia y con una contraseña
// de al menos minAutoRegister caracteres, da de alta un cliente nuevo.
func (s *DirectoryStore) Login(ctx context.Context, identifier, password string) repository.LoginResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if (u.Email == identifier || u.Name == identifier) && (password == "" || u.Password == password) {
			s.setSession(ctx, u)
			return repository.LoginResult{Outcome: repository.LoginFound, Profile: u.Clone()}
		}
	}

	if password == "" || len(password) < s.minAutoRegister {
		return repository.LoginResult{Outcome: repository.LoginRejected}
	}

	name, _, _ := strings.Cut(identifier, "@")
	created := entity.UserProfile{
		ID:           s.newID(),
		Name:         name,
		Email:        identifier,
		Password:     password,
		Role:         entity.RoleUser,
		IsAdmin:      false,
		OrderHistory: []string{},
	}
	s.users = append(s.users, created)
	s.persistUsers(ctx)
	s.setSession(ctx, created)
	return repository.LoginResult{Outcome: repository.LoginCreated, Profile: created.Clone()}
}

// Logout limpia el puntero de sesión y borra su clave persistida.
func (s *DirectoryStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.mirror.remove(ctx, KeySession)
}

// CurrentUser perfil de la sesión activa.
func (s *DirectoryStore) CurrentUser() (entity.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return entity.UserProfile{}, false
	}
	return s.session.Clone(), true
}

func (s *DirectoryStore) sessionRole() entity.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Role
}

// IsSuperAdmin se recalcula con el rol de la sesión en cada llamada.
func (s *DirectoryStore) IsSuperAdmin() bool { return s.sessionRole() == entity.RoleSuperAdmin }

// IsAdmin true para admin y super-admin.
func (s *DirectoryStore) IsAdmin() bool { return s.sessionRole().IsAdmin() }

// IsManager true solo para manager.
func (s *DirectoryStore) IsManager() bool { return s.sessionRole() == entity.RoleManager }

// ─── Usuarios ────────────────────────────────────────────────────────────────

// Users copia de todos los perfiles.
func (s *DirectoryStore) Users() []entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.CloneUsers(s.users)
}

// User busca un perfil por id.
func (s *DirectoryStore) User(id string) (entity.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(id); i >= 0 {
		return s.users[i].Clone(), true
	}
	return entity.UserProfile{}, false
}

// UpsertStaff combina con el registro existente del mismo id o lo inserta con historial vacío.
// IsAdmin siempre se recalcula desde el rol. La contraseña vacía conserva la anterior.
func (s *DirectoryStore) UpsertStaff(ctx context.Context, profile entity.UserProfile) entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(profile.ID); i >= 0 {
		cur := s.users[i]
		cur.Name = profile.Name
		cur.Email = profile.Email
		cur.Role = profile.Role
		if profile.Password != "" {
			cur.Password = profile.Password
		}
		cur.IsAdmin = cur.Role.IsAdmin()
		s.users[i] = cur
		s.users = ensureSuperAdmin(s.users)
		s.persistUsers(ctx)
		s.refreshSession(ctx)
		return cur.Clone()
	}

	created := entity.UserProfile{
		ID:           profile.ID,
		Name:         profile.Name,
		Email:        profile.Email,
		Password:     profile.Password,
		Role:         profile.Role,
		IsAdmin:      profile.Role.IsAdmin(),
		Address:      profile.Address,
		Street:       profile.Street,
		RiderNote:    profile.RiderNote,
		OrderHistory: []string{},
	}
	s.users = ensureSuperAdmin(append(s.users, created))
	s.persistUsers(ctx)
	return created.Clone()
}

// DeleteStaff elimina el usuario sin condiciones; la autorización vive en la capa de aplicación.
// Si era el último super-admin, se vuelve a inyectar el registro por defecto.
func (s *DirectoryStore) DeleteStaff(ctx context.Context, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return false
	}
	s.users = ensureSuperAdmin(append(s.users[:i], s.users[i+1:]...))
	s.persistUsers(ctx)
	return true
}

// ─── Pedidos ─────────────────────────────────────────────────────────────────

// Orders copia del libro de pedidos, del más reciente al más antiguo.
func (s *DirectoryStore) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.CloneOrders(s.orders)
}

// Order busca un pedido por id.
func (s *DirectoryStore) Order(id string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.orderIndex(id); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return entity.Order{}, false
}

// OrderIDExists indica si el código ya está usado.
func (s *DirectoryStore) OrderIDExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderIndex(id) >= 0
}

// PlaceOrder agrega el pedido al inicio del libro y su id al historial del usuario.
// No vacía el carrito: eso es el segundo paso del checkout.
func (s *DirectoryStore) PlaceOrder(ctx context.Context, order entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]entity.Order{order.Clone()}, s.orders...)
	s.persistOrders(ctx)

	if i := s.userIndex(order.UserID); i >= 0 {
		s.users[i].OrderHistory = append(s.users[i].OrderHistory, order.ID)
		s.persistUsers(ctx)
		s.refreshSession(ctx)
	}
}

// UpdateOrderStatus aplica la transición si la tabla de estados la permite.
func (s *DirectoryStore) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(orderID)
	if i < 0 {
		return entity.Order{}, domain.ErrNotFound
	}
	cur := s.orders[i].Status
	if !cur.CanTransitionTo(status) {
		return entity.Order{}, fmt.Errorf("%s → %s: %w", cur, status, domain.ErrInvalidTransition)
	}
	s.orders[i].Status = status
	s.persistOrders(ctx)
	return s.orders[i].Clone(), nil
}
