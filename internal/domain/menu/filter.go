// Package menu filtra y ordena el catálogo para la carta pública.
package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// CategoryAll valor de Category que no restringe.
const CategoryAll = "All"

// SortOrder orden por precio de lista.
type SortOrder string

// Órdenes soportados.
const (
	SortNone    SortOrder = "none"
	SortLowHigh SortOrder = "low-high"
	SortHighLow SortOrder = "high-low"
)

// Filter criterios de la carta. El valor cero no filtra nada.
type Filter struct {
	Search         string
	Category       string // "All" o vacío = cualquiera
	OnlyDiscounted bool
	MinRating      decimal.Decimal // 0 = sin mínimo
	Sort           SortOrder
}

// Validate rechaza categorías u órdenes fuera del conjunto conocido.
func (f Filter) Validate() error {
	if f.Category != "" && f.Category != CategoryAll && !entity.Category(f.Category).Valid() {
		return fmt.Errorf("categoría desconocida %q", f.Category)
	}
	switch f.Sort {
	case "", SortNone, SortLowHigh, SortHighLow:
	default:
		return fmt.Errorf("orden desconocido %q", f.Sort)
	}
	if f.MinRating.IsNegative() {
		return fmt.Errorf("rating mínimo negativo")
	}
	return nil
}

// Apply devuelve una copia filtrada de items. La búsqueda compara el nombre sin
// distinguir mayúsculas (case folding Unicode). El orden es estable sobre el precio de lista.
func Apply(items []entity.MenuItem, f Filter) []entity.MenuItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(f.Search))

	out := make([]entity.MenuItem, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(fold.String(it.Name), needle) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && string(it.Category) != f.Category {
			continue
		}
		if f.OnlyDiscounted && !(it.Discount != nil && it.Discount.IsPositive()) {
			continue
		}
		if f.MinRating.IsPositive() && it.Rating.LessThan(f.MinRating) {
			continue
		}
		out = append(out, it.Clone())
	}

	switch f.Sort {
	case SortLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}
