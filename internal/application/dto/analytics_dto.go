package dto

import "github.com/shopspring/decimal"

// AnalyticsReportDTO respuesta de GET /api/admin/analytics.
type AnalyticsReportDTO struct {
	TotalRevenue      decimal.Decimal    `json:"total_revenue"`
	CompletedOrders   int                `json:"completed_orders"`
	AverageOrderValue decimal.Decimal    `json:"average_order_value"`
	TotalItemsSold    int                `json:"total_items_sold"`
	OrderCount        int                `json:"order_count"`
	CategorySales     []CategorySalesDTO `json:"category_sales"`
	TopItems          []TopItemDTO       `json:"top_items"`
	StatusBreakdown   map[string]int     `json:"status_breakdown"`
}

// CategorySalesDTO ventas por categoría (precio de lista) y su porcentaje sobre los ingresos.
type CategorySalesDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}

// TopItemDTO ítem del ranking de más vendidos.
type TopItemDTO struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	SoldCount int             `json:"sold_count"`
}

// CustomerStatDTO resumen de un cliente.
type CustomerStatDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}
