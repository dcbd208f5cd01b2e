package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarotoReceiptGenerator_ProducesPDF(t *testing.T) {
	ten := decimal.NewFromInt(10)
	order := entity.Order{
		ID:       "K3X9QZ",
		UserID:   "guest",
		UserName: "Ana",
		Items: []entity.CartLine{
			{MenuItem: entity.MenuItem{ID: 1, Name: "Classic Zinger Burger", Price: decimal.RequireFromString("5.99"), Discount: &ten}, Quantity: 2},
			{MenuItem: entity.MenuItem{ID: 5, Name: "Large Cheese Fries", Price: decimal.RequireFromString("4.99")}, Quantity: 1},
		},
		Total:     decimal.RequireFromString("20.772"),
		Status:    entity.OrderPending,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
		Address:   "Calle 10, Casa 4",
		Phone:     "3001234567",
	}

	out, err := pdf.NewMarotoReceiptGenerator().GenerateReceiptPDF(
		context.Background(), order, entity.DefaultStoreSettings(), decimal.NewFromInt(5))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida es un PDF")
}
