package dto

import "github.com/shopspring/decimal"

// MenuItemRequest entrada para crear o reemplazar un ítem del catálogo (el id va en la ruta).
type MenuItemRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category"`
	Rating      decimal.Decimal  `json:"rating"`
	Reviews     int              `json:"reviews"`
	Image       string           `json:"image"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	IsPopular   bool             `json:"is_popular"`
}

// MenuItemResponse salida de un ítem con su precio efectivo.
type MenuItemResponse struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	Category       string           `json:"category"`
	Rating         decimal.Decimal  `json:"rating"`
	Reviews        int              `json:"reviews"`
	Image          string           `json:"image"`
	Discount       *decimal.Decimal `json:"discount,omitempty"`
	IsPopular      bool             `json:"is_popular"`
}

// MenuQuery filtros de GET /api/menu.
type MenuQuery struct {
	Search         string `query:"search"`
	Category       string `query:"category"`
	OnlyDiscounted bool   `query:"only_discounted"`
	MinRating      string `query:"min_rating"`
	Sort           string `query:"sort"`
}

// MenuListResponse carta filtrada.
type MenuListResponse struct {
	Items      []MenuItemResponse `json:"items"`
	Total      int                `json:"total"`
	Categories []string           `json:"categories"`
}
