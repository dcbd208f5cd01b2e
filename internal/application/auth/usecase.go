package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/jhoicas/burger-house/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginObserver recibe el resultado de cada intento de login (métricas).
type LoginObserver interface {
	LoginAttempt(outcome string)
}

// AuthUseCase casos de uso de sesión: login con alta automática, logout y perfil actual.
type AuthUseCase struct {
	directory repository.DirectoryRepository
	jwtCfg    JWTConfig
	observer  LoginObserver
}

// NewAuthUseCase construye el caso de uso de auth. observer puede ser nil.
func NewAuthUseCase(directory repository.DirectoryRepository, jwtCfg JWTConfig, observer LoginObserver) *AuthUseCase {
	return &AuthUseCase{directory: directory, jwtCfg: jwtCfg, observer: observer}
}

// Login busca el perfil por email o nombre; si no existe y la contraseña es suficientemente
// larga, el directorio crea un cliente nuevo. Devuelve ErrUnauthorized si se rechaza.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" {
		return nil, fmt.Errorf("identificador requerido: %w", domain.ErrInvalidInput)
	}

	res := uc.directory.Login(ctx, identifier, in.Password)
	if uc.observer != nil {
		uc.observer.LoginAttempt(string(res.Outcome))
	}
	if res.Outcome == repository.LoginRejected {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, res.Profile.ID, string(res.Profile.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Outcome: string(res.Outcome),
		Token:   token,
		User:    toUserResponse(res.Profile),
	}, nil
}

// Logout limpia la sesión del directorio. El JWT emitido sigue siendo válido hasta expirar.
func (uc *AuthUseCase) Logout(ctx context.Context) {
	uc.directory.Logout(ctx)
}

// ResolveActor carga el perfil vigente del directorio; el rol del token puede estar desactualizado.
func (uc *AuthUseCase) ResolveActor(userID string) (access.Actor, error) {
	if userID == "" {
		return access.Guest, nil
	}
	u, ok := uc.directory.User(userID)
	if !ok {
		return access.Guest, domain.ErrUnauthorized
	}
	return access.ActorFor(u), nil
}

// Me perfil del actor con los permisos derivados de su rol.
func (uc *AuthUseCase) Me(actor access.Actor) (*dto.SessionResponse, error) {
	if actor.IsGuest() {
		return nil, domain.ErrUnauthorized
	}
	u, ok := uc.directory.User(actor.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	a := access.ActorFor(u)
	return &dto.SessionResponse{
		User:         toUserResponse(u),
		IsSuperAdmin: u.Role == entity.RoleSuperAdmin,
		IsAdmin:      u.Role.IsAdmin(),
		IsManager:    u.Role == entity.RoleManager,
		Permissions: dto.Permissions{
			Console:  access.CanUseConsole(a),
			Staff:    access.CanManageStaff(a),
			Settings: access.CanManageSettings(a),
		},
	}, nil
}

func toUserResponse(u entity.UserProfile) dto.UserResponse {
	history := u.OrderHistory
	if history == nil {
		history = []string{}
	}
	return dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		IsAdmin:      u.IsAdmin,
		Address:      u.Address,
		Street:       u.Street,
		RiderNote:    u.RiderNote,
		OrderHistory: history,
	}
}
