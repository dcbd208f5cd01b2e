package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

// SettingsUseCase identidad de la tienda.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get ajustes actuales y título de página.
func (uc *SettingsUseCase) Get() *dto.SettingsResponse {
	return toSettingsResponse(uc.repo.Get())
}

// Update reemplaza la identidad completa. Solo super-admin.
func (uc *SettingsUseCase) Update(ctx context.Context, actor access.Actor, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if err := access.RequireSettings(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	logo := strings.TrimSpace(in.Logo)
	if name == "" || logo == "" {
		return nil, fmt.Errorf("nombre y logo requeridos: %w", domain.ErrInvalidInput)
	}
	next := uc.repo.Update(ctx, entity.StoreSettings{Name: name, Logo: logo, IsLogoImage: in.IsLogoImage})
	return toSettingsResponse(next), nil
}

func toSettingsResponse(s entity.StoreSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Name:        s.Name,
		Logo:        s.Logo,
		IsLogoImage: s.IsLogoImage,
		PageTitle:   s.PageTitle(),
	}
}
