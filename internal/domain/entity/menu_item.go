package entity

import "github.com/shopspring/decimal"

// Category categoría de menú (conjunto cerrado).
type Category string

// Categorías válidas para MenuItem.
const (
	CategoryBurger  Category = "Burger"
	CategoryPizza   Category = "Pizza"
	CategoryFries   Category = "Fries"
	CategoryDrinks  Category = "Drinks"
	CategoryDeals   Category = "Deals"
	CategoryMoreFun Category = "More Fun"
)

// Categories en el orden en que se muestran.
var Categories = []Category{
	CategoryBurger, CategoryPizza, CategoryFries, CategoryDrinks, CategoryDeals, CategoryMoreFun,
}

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var hundred = decimal.NewFromInt(100)

// MenuItem representa un plato o bebida del catálogo.
// ID se asigna como max(existentes)+1 y es inmutable después.
type MenuItem struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Category    Category         `json:"category"`
	Rating      decimal.Decimal  `json:"rating"`
	Reviews     int              `json:"reviews"`
	Image       string           `json:"image"`
	Discount    *decimal.Decimal `json:"discount,omitempty"` // porcentaje 0–100
	IsPopular   bool             `json:"isPopular,omitempty"`
}

// HasDiscount es true si hay un descuento distinto de cero.
func (m MenuItem) HasDiscount() bool {
	return m.Discount != nil && !m.Discount.IsZero()
}

// EffectivePrice precio con el descuento aplicado: price * (1 - discount/100).
func (m MenuItem) EffectivePrice() decimal.Decimal {
	if !m.HasDiscount() {
		return m.Price
	}
	return m.Price.Mul(decimal.NewFromInt(1).Sub(m.Discount.Div(hundred)))
}

// Clone copia profunda (el descuento es un puntero).
func (m MenuItem) Clone() MenuItem {
	if m.Discount != nil {
		d := *m.Discount
		m.Discount = &d
	}
	return m
}

// CloneMenuItems copia profunda de una lista de ítems.
func CloneMenuItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
