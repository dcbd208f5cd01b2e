package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

// StaffUseCase gestión del staff desde la consola.
type StaffUseCase struct {
	repo repository.DirectoryRepository
}

// NewStaffUseCase construye el caso de uso con el directorio.
func NewStaffUseCase(repo repository.DirectoryRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// List staff (todo rol distinto de user) con lo que el actor puede hacer sobre cada uno.
func (uc *StaffUseCase) List(actor access.Actor) (*dto.StaffListResponse, error) {
	if err := access.RequireStaffManagement(actor); err != nil {
		return nil, err
	}
	out := &dto.StaffListResponse{Items: []dto.StaffMemberResponse{}, AssignableRoles: []string{}}
	for _, u := range uc.repo.Users() {
		if u.Role == entity.RoleUser {
			continue
		}
		out.Items = append(out.Items, dto.StaffMemberResponse{
			UserResponse: entityToUserResponse(u),
			Editable:     access.CanEditStaff(actor, u),
		})
	}
	for _, r := range access.AssignableRoles(actor) {
		out.AssignableRoles = append(out.AssignableRoles, string(r))
	}
	return out, nil
}

// Upsert crea (ID vacío o inexistente) o edita un miembro del staff.
func (uc *StaffUseCase) Upsert(ctx context.Context, actor access.Actor, in dto.UpsertStaffRequest) (*dto.UserResponse, error) {
	if err := access.RequireStaffManagement(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	role := entity.Role(in.Role)
	if name == "" || email == "" {
		return nil, fmt.Errorf("nombre y email requeridos: %w", domain.ErrInvalidInput)
	}
	if !role.Valid() || role == entity.RoleUser {
		return nil, fmt.Errorf("rol de staff %q: %w", in.Role, domain.ErrInvalidInput)
	}
	if !access.CanAssignRole(actor, role) {
		return nil, domain.ErrForbidden
	}

	id := strings.TrimSpace(in.ID)
	existing, exists := uc.repo.User(id)
	if id != "" && exists {
		if !access.CanEditStaff(actor, existing) {
			return nil, domain.ErrForbidden
		}
	} else {
		if in.Password == "" {
			return nil, fmt.Errorf("contraseña requerida para staff nuevo: %w", domain.ErrInvalidInput)
		}
		if id == "" {
			id = uuid.New().String()
		}
	}
	for _, u := range uc.repo.Users() {
		if u.ID != id && u.Email == email {
			return nil, fmt.Errorf("email %q: %w", email, domain.ErrDuplicate)
		}
	}

	saved := uc.repo.UpsertStaff(ctx, entity.UserProfile{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: in.Password,
		Role:     role,
	})
	resp := entityToUserResponse(saved)
	return &resp, nil
}

// Delete elimina un miembro del staff que el actor pueda gestionar.
func (uc *StaffUseCase) Delete(ctx context.Context, actor access.Actor, userID string) error {
	if err := access.RequireStaffManagement(actor); err != nil {
		return err
	}
	target, ok := uc.repo.User(userID)
	if !ok {
		return domain.ErrNotFound
	}
	if !access.CanEditStaff(actor, target) {
		return domain.ErrForbidden
	}
	uc.repo.DeleteStaff(ctx, userID)
	return nil
}

func entityToUserResponse(u entity.UserProfile) dto.UserResponse {
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
