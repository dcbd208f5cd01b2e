// Package analytics contiene los casos de uso del panel de analítica de la consola.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	domainanalytics "github.com/jhoicas/burger-house/internal/domain/analytics"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
)

// DashboardUseCase indicadores del panel.
//
// Fuente de datos: snapshots del directorio y del catálogo. Los cálculos son
// funciones puras sobre esas copias; nada queda cacheado entre llamadas.
type DashboardUseCase struct {
	directory repository.DirectoryRepository
	catalog   repository.CatalogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(directory repository.DirectoryRepository, catalog repository.CatalogRepository) *DashboardUseCase {
	return &DashboardUseCase{directory: directory, catalog: catalog}
}

// Report construye el AnalyticsReportDTO.
//
// Dos lecturas en paralelo:
//  1. Orders() → libro de pedidos
//  2. Items()  → catálogo vigente (para el ranking)
func (uc *DashboardUseCase) Report(ctx context.Context, actor access.Actor) (*dto.AnalyticsReportDTO, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}

	ordersCh := make(chan []entity.Order, 1)
	itemsCh := make(chan []entity.MenuItem, 1)
	go func() { ordersCh <- uc.directory.Orders() }()
	go func() { itemsCh <- uc.catalog.Items() }()

	var (
		orders []entity.Order
		items  []entity.MenuItem
	)
	for range 2 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analítica: %w", ctx.Err())
		case orders = <-ordersCh:
		case items = <-itemsCh:
		}
	}

	report := domainanalytics.BuildReport(orders, items)

	// ── Construir DTO ──────────────────────────────────────────────────────────
	out := &dto.AnalyticsReportDTO{
		TotalRevenue:      report.Revenue.Round(2),
		CompletedOrders:   report.CompletedCount,
		AverageOrderValue: report.AverageOrderValue.Round(2),
		TotalItemsSold:    report.TotalItemsSold,
		OrderCount:        report.OrderCount,
		CategorySales:     make([]dto.CategorySalesDTO, 0, len(report.CategorySales)),
		TopItems:          make([]dto.TopItemDTO, 0, len(report.TopItems)),
		StatusBreakdown:   statusBreakdown(orders),
	}
	for _, c := range report.CategorySales {
		out.CategorySales = append(out.CategorySales, dto.CategorySalesDTO{
			Category: string(c.Category),
			Amount:   c.Amount.Round(2),
			Share:    c.Share.Round(1),
		})
	}
	for _, t := range report.TopItems {
		out.TopItems = append(out.TopItems, dto.TopItemDTO{
			ItemID:    t.Item.ID,
			Name:      t.Item.Name,
			Category:  string(t.Item.Category),
			Price:     t.Item.Price,
			Image:     t.Item.Image,
			SoldCount: t.SoldCount,
		})
	}
	return out, nil
}

// Customers clientes (rol user) ordenados por gasto.
func (uc *DashboardUseCase) Customers(actor access.Actor) ([]dto.CustomerStatDTO, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}
	stats := domainanalytics.CustomerStats(uc.directory.Users(), uc.directory.Orders())
	out := make([]dto.CustomerStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.CustomerStatDTO{
			ID:         s.User.ID,
			Name:       s.User.Name,
			Email:      s.User.Email,
			OrderCount: s.OrderCount,
			TotalSpent: s.TotalSpent.Round(2),
		})
	}
	return out, nil
}

// statusBreakdown cantidad de pedidos por estado; siempre incluye los cuatro estados.
func statusBreakdown(orders []entity.Order) map[string]int {
	out := map[string]int{
		string(entity.OrderPending):   0,
		string(entity.OrderAccepted):  0,
		string(entity.OrderDelivered): 0,
		string(entity.OrderCancelled): 0,
	}
	for _, o := range orders {
		out[string(o.Status)]++
	}
	return out
}
