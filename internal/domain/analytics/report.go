// Package analytics deriva los indicadores del panel de la tienda a partir de
// snapshots explícitos de pedidos, catálogo y usuarios. Todas las funciones son
// puras: no guardan estado ni cachean, se recalculan en cada llamada.
package analytics

import (
	"sort"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TopItemsLimit número de ítems en el ranking de más vendidos.
const TopItemsLimit = 5

// StatusAll filtro que no restringe por estado.
const StatusAll = "all"

var hundred = decimal.NewFromInt(100)

// CategorySale ventas acumuladas de una categoría.
type CategorySale struct {
	Category entity.Category
	Amount   decimal.Decimal
	Share    decimal.Decimal // porcentaje sobre Revenue (0 si no hay ingresos)
}

// ItemSales ítem del catálogo con la cantidad vendida.
type ItemSales struct {
	Item      entity.MenuItem
	SoldCount int
}

// CustomerStat resumen de compras de un cliente.
type CustomerStat struct {
	User       entity.UserProfile
	OrderCount int
	TotalSpent decimal.Decimal
}

// Report agregado completo del panel.
type Report struct {
	Revenue           decimal.Decimal
	CompletedCount    int
	AverageOrderValue decimal.Decimal
	TotalItemsSold    int
	OrderCount        int
	CategorySales     []CategorySale
	TopItems          []ItemSales
}

func counts(o entity.Order) bool { return o.Status != entity.OrderCancelled }

// Revenue suma de Total de los pedidos no cancelados.
func Revenue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if counts(o) {
			total = total.Add(o.Total)
		}
	}
	return total
}

// CompletedCount pedidos entregados.
func CompletedCount(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == entity.OrderDelivered {
			n++
		}
	}
	return n
}

// AverageOrderValue Revenue / pedidos no cancelados; 0 si no hay ninguno.
func AverageOrderValue(orders []entity.Order) decimal.Decimal {
	n := 0
	for _, o := range orders {
		if counts(o) {
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return Revenue(orders).Div(decimal.NewFromInt(int64(n)))
}

// TotalItemsSold número de líneas (no unidades) de todos los pedidos, cancelados incluidos.
func TotalItemsSold(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		n += len(o.Items)
	}
	return n
}

// CategorySales acumula precio de lista * cantidad por categoría en pedidos no cancelados.
// El descuento no se aplica. Orden: el de entity.Categories; categorías desconocidas al final por nombre.
func CategorySales(orders []entity.Order) []CategorySale {
	byCategory := map[entity.Category]decimal.Decimal{}
	for _, o := range orders {
		if !counts(o) {
			continue
		}
		for _, l := range o.Items {
			amount := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
			byCategory[l.Category] = byCategory[l.Category].Add(amount)
		}
	}

	revenue := Revenue(orders)
	out := make([]CategorySale, 0, len(byCategory))
	for _, c := range entity.Categories {
		if amount, ok := byCategory[c]; ok {
			out = append(out, CategorySale{Category: c, Amount: amount, Share: CategoryShare(amount, revenue)})
			delete(byCategory, c)
		}
	}
	rest := make([]entity.Category, 0, len(byCategory))
	for c := range byCategory {
		rest = append(rest, c)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, c := range rest {
		out = append(out, CategorySale{Category: c, Amount: byCategory[c], Share: CategoryShare(byCategory[c], revenue)})
	}
	return out
}

// CategoryShare amount / revenue * 100; 0 cuando revenue es 0.
func CategoryShare(amount, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return amount.Div(revenue).Mul(hundred)
}

// TopItems ítems del catálogo ordenados por unidades vendidas en TODOS los pedidos
// (cancelados incluidos). Empates conservan el orden del catálogo. Devuelve hasta limit.
func TopItems(orders []entity.Order, items []entity.MenuItem, limit int) []ItemSales {
	sold := map[int]int{}
	for _, o := range orders {
		for _, l := range o.Items {
			sold[l.ID] += l.Quantity
		}
	}
	ranked := make([]ItemSales, len(items))
	for i, it := range items {
		ranked[i] = ItemSales{Item: it.Clone(), SoldCount: sold[it.ID]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].SoldCount > ranked[j].SoldCount })
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CustomerStats por cada usuario con rol user: cantidad de pedidos y gasto total
// (todos los estados), ordenado por gasto descendente.
func CustomerStats(users []entity.UserProfile, orders []entity.Order) []CustomerStat {
	out := make([]CustomerStat, 0, len(users))
	for _, u := range users {
		if u.Role != entity.RoleUser {
			continue
		}
		stat := CustomerStat{User: u.Clone(), TotalSpent: decimal.Zero}
		for _, o := range orders {
			if o.UserID == u.ID {
				stat.OrderCount++
				stat.TotalSpent = stat.TotalSpent.Add(o.Total)
			}
		}
		out = append(out, stat)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent.GreaterThan(out[j].TotalSpent) })
	return out
}

// FilterOrdersByStatus "all" (o vacío) devuelve todos; si no, solo los del estado pedido.
func FilterOrdersByStatus(orders []entity.Order, status string) []entity.Order {
	if status == "" || status == StatusAll {
		return entity.CloneOrders(orders)
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

// BuildReport calcula todos los indicadores sobre los snapshots recibidos.
func BuildReport(orders []entity.Order, items []entity.MenuItem) Report {
	return Report{
		Revenue:           Revenue(orders),
		CompletedCount:    CompletedCount(orders),
		AverageOrderValue: AverageOrderValue(orders),
		TotalItemsSold:    TotalItemsSold(orders),
		OrderCount:        len(orders),
		CategorySales:     CategorySales(orders),
		TopItems:          TopItems(orders, items, TopItemsLimit),
	}
}
