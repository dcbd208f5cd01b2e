package entity_test

import (
	"testing"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ─── OrderStatus ─────────────────────────────────────────────────────────────

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderPending, entity.OrderAccepted, true},
		{entity.OrderPending, entity.OrderCancelled, true},
		{entity.OrderAccepted, entity.OrderDelivered, true},
		{entity.OrderPending, entity.OrderDelivered, false},
		{entity.OrderAccepted, entity.OrderCancelled, false},
		{entity.OrderDelivered, entity.OrderPending, false},
		{entity.OrderCancelled, entity.OrderAccepted, false},
		{entity.OrderPending, entity.OrderPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"→"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_NextStatusesEsCopia(t *testing.T) {
	next := entity.OrderPending.NextStatuses()
	next[0] = entity.OrderDelivered

	assert.Equal(t, []entity.OrderStatus{entity.OrderAccepted, entity.OrderCancelled}, entity.OrderPending.NextStatuses())
	assert.Empty(t, entity.OrderDelivered.NextStatuses())
}

// ─── MenuItem / CartLine ─────────────────────────────────────────────────────

func TestMenuItem_EffectivePrice(t *testing.T) {
	ten := decimal.NewFromInt(10)
	zero := decimal.Zero

	withDiscount := entity.MenuItem{Price: decimal.NewFromInt(10), Discount: &ten}
	assert.Equal(t, "9", withDiscount.EffectivePrice().String())

	zeroDiscount := entity.MenuItem{Price: decimal.NewFromInt(10), Discount: &zero}
	assert.False(t, zeroDiscount.HasDiscount())
	assert.Equal(t, "10", zeroDiscount.EffectivePrice().String())

	line := entity.CartLine{MenuItem: withDiscount, Quantity: 2}
	assert.Equal(t, "18", line.LineTotal().String())
}

func TestOrder_CloneNoComparteLineas(t *testing.T) {
	d := decimal.NewFromInt(10)
	o := entity.Order{ID: "ABC123", Items: []entity.CartLine{{MenuItem: entity.MenuItem{ID: 1, Discount: &d}, Quantity: 1}}}

	c := o.Clone()
	c.Items[0].Quantity = 5
	*c.Items[0].Discount = decimal.NewFromInt(50)

	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, "10", o.Items[0].Discount.String())
}

// ─── Role ────────────────────────────────────────────────────────────────────

func TestRole_Jerarquia(t *testing.T) {
	assert.True(t, entity.RoleSuperAdmin.Outranks(entity.RoleAdmin))
	assert.True(t, entity.RoleAdmin.Outranks(entity.RoleManager))
	assert.True(t, entity.RoleManager.Outranks(entity.RoleUser))
	assert.False(t, entity.RoleManager.Outranks(entity.RoleManager))

	assert.True(t, entity.RoleAdmin.IsAdmin())
	assert.False(t, entity.RoleManager.IsAdmin())
	assert.True(t, entity.RoleManager.IsStaff())
	assert.False(t, entity.RoleUser.IsStaff())
	assert.False(t, entity.Role("owner").Valid())
}

func TestStoreSettings_PageTitle(t *testing.T) {
	assert.Equal(t, "BURGER HOUSE | Premium Taste", entity.DefaultStoreSettings().PageTitle())
}
