package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/menu"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	maxRating   = decimal.NewFromInt(5)
	maxDiscount = decimal.NewFromInt(100)
)

// CatalogUseCase carta pública y su edición desde la consola.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso con el store del catálogo.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List aplica los filtros de la carta.
func (uc *CatalogUseCase) List(q dto.MenuQuery) (*dto.MenuListResponse, error) {
	f := menu.Filter{
		Search:         q.Search,
		Category:       q.Category,
		OnlyDiscounted: q.OnlyDiscounted,
		Sort:           menu.SortOrder(q.Sort),
	}
	if q.MinRating != "" {
		r, err := decimal.NewFromString(q.MinRating)
		if err != nil {
			return nil, fmt.Errorf("min_rating: %w", domain.ErrInvalidInput)
		}
		f.MinRating = r
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	items := menu.Apply(uc.repo.Items(), f)
	out := &dto.MenuListResponse{
		Items:      make([]dto.MenuItemResponse, 0, len(items)),
		Total:      len(items),
		Categories: []string{menu.CategoryAll},
	}
	for _, it := range items {
		out.Items = append(out.Items, toMenuItemResponse(it))
	}
	for _, c := range entity.Categories {
		out.Categories = append(out.Categories, string(c))
	}
	return out, nil
}

// Get obtiene un ítem por id.
func (uc *CatalogUseCase) Get(id int) (*dto.MenuItemResponse, error) {
	it, ok := uc.repo.Item(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toMenuItemResponse(it)
	return &resp, nil
}

// Create agrega un ítem; el id lo asigna el store.
func (uc *CatalogUseCase) Create(ctx context.Context, actor access.Actor, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}
	item, err := menuItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	created := uc.repo.Add(ctx, item)
	resp := toMenuItemResponse(created)
	return &resp, nil
}

// Update reemplaza el ítem id con los datos recibidos.
func (uc *CatalogUseCase) Update(ctx context.Context, actor access.Actor, id int, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}
	item, err := menuItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if !uc.repo.Update(ctx, item) {
		return nil, domain.ErrNotFound
	}
	resp := toMenuItemResponse(item)
	return &resp, nil
}

// Delete quita el ítem de la carta. Los pedidos ya hechos conservan su copia.
func (uc *CatalogUseCase) Delete(ctx context.Context, actor access.Actor, id int) error {
	if err := access.RequireConsole(actor); err != nil {
		return err
	}
	if !uc.repo.Delete(ctx, id) {
		return domain.ErrNotFound
	}
	return nil
}

func menuItemFromRequest(in dto.MenuItemRequest) (entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return entity.MenuItem{}, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	case !in.Price.IsPositive():
		return entity.MenuItem{}, fmt.Errorf("el precio debe ser mayor que 0: %w", domain.ErrInvalidInput)
	case !entity.Category(in.Category).Valid():
		return entity.MenuItem{}, fmt.Errorf("categoría %q: %w", in.Category, domain.ErrInvalidInput)
	case in.Rating.IsNegative() || in.Rating.GreaterThan(maxRating):
		return entity.MenuItem{}, fmt.Errorf("rating fuera de 0–5: %w", domain.ErrInvalidInput)
	case in.Reviews < 0:
		return entity.MenuItem{}, fmt.Errorf("reviews negativo: %w", domain.ErrInvalidInput)
	case in.Discount != nil && (in.Discount.IsNegative() || in.Discount.GreaterThan(maxDiscount)):
		return entity.MenuItem{}, fmt.Errorf("descuento fuera de 0–100: %w", domain.ErrInvalidInput)
	}
	item := entity.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    entity.Category(in.Category),
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		Image:       in.Image,
		IsPopular:   in.IsPopular,
	}
	if in.Discount != nil && !in.Discount.IsZero() {
		d := *in.Discount
		item.Discount = &d
	}
	return item, nil
}

func toMenuItemResponse(it entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		Price:          it.Price,
		EffectivePrice: it.EffectivePrice(),
		Category:       string(it.Category),
		Rating:         it.Rating,
		Reviews:        it.Reviews,
		Image:          it.Image,
		Discount:       it.Clone().Discount,
		IsPopular:      it.IsPopular,
	}
}
