package ordering_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/ordering"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manager = access.Actor{UserID: "manager-id", Name: "Day Manager", Role: entity.RoleManager}

// placeFor registra un pedido con código fijo para actor.
func placeFor(t *testing.T, f *fixture, actor access.Actor, code string) {
	t.Helper()
	f.addToCart(t, 2, 1)
	uc := newCheckout(f, nil, ordering.WithCodeGenerator(sequence(code)))
	_, err := uc.PlaceOrder(context.Background(), actor, validCheckout())
	require.NoError(t, err)
}

func TestOrderUseCase_StaffLifecycle(t *testing.T) {
	f := newFixture(t)
	obs := &observerRecorder{}
	uc := ordering.NewOrderUseCase(f.dir, 0, obs, nil)
	ctx := context.Background()
	placeFor(t, f, access.Guest, "LIFE01")

	accepted, err := uc.Accept(ctx, manager, "LIFE01")
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)
	assert.Equal(t, []string{"delivered"}, accepted.NextStatuses)

	_, err = uc.Cancel(ctx, manager, "LIFE01")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	delivered, err := uc.Deliver(ctx, manager, "LIFE01")
	require.NoError(t, err)
	assert.Empty(t, delivered.NextStatuses)

	_, err = uc.UpdateStatus(ctx, manager, "LIFE01", "pending")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.UpdateStatus(ctx, manager, "LIFE01", "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Accept(ctx, manager, "NOPE00")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{"accepted", "delivered"}, obs.statuses)
}

func TestOrderUseCase_ConsoleOnlyForStaff(t *testing.T) {
	f := newFixture(t)
	uc := ordering.NewOrderUseCase(f.dir, 0, nil, nil)
	cust := f.customer(t, "ana@mail.com")
	placeFor(t, f, cust, "MINE01")

	_, err := uc.List(cust, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Accept(context.Background(), cust, "MINE01")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.List(access.Guest, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderUseCase_ListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	uc := ordering.NewOrderUseCase(f.dir, 0, nil, nil)
	placeFor(t, f, access.Guest, "FIRST1")
	placeFor(t, f, access.Guest, "SECND2")
	_, err := uc.Accept(context.Background(), manager, "FIRST1")
	require.NoError(t, err)

	all, err := uc.List(manager, "all")
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "SECND2", all.Items[0].ID, "el más reciente primero")

	pending, err := uc.List(manager, "pending")
	require.NoError(t, err)
	require.Equal(t, 1, pending.Total)
	assert.Equal(t, "SECND2", pending.Items[0].ID)

	_, err = uc.List(manager, "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_Visibility(t *testing.T) {
	f := newFixture(t)
	uc := ordering.NewOrderUseCase(f.dir, 0, nil, nil)
	ana := f.customer(t, "ana@mail.com")
	beto := f.customer(t, "beto@mail.com")
	placeFor(t, f, ana, "ANA001")
	placeFor(t, f, access.Guest, "GUEST1")

	_, err := uc.Get(ana, "ANA001")
	assert.NoError(t, err)
	_, err = uc.Get(beto, "ANA001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Get(access.Guest, "GUEST1")
	assert.NoError(t, err)
	_, err = uc.Get(access.Guest, "ANA001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Get(manager, "ANA001")
	assert.NoError(t, err)

	mine, err := uc.ListMine(ana)
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, "ANA001", mine.Items[0].ID)
	_, err = uc.ListMine(access.Guest)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderUseCase_CancelMine(t *testing.T) {
	f := newFixture(t)
	uc := ordering.NewOrderUseCase(f.dir, 30*time.Second, nil, nil)
	ctx := context.Background()
	ana := f.customer(t, "ana@mail.com")
	placeFor(t, f, ana, "ANA001")
	placeFor(t, f, ana, "ANA002")
	placeFor(t, f, access.Guest, "GUEST1")

	uc.SetClock(func() time.Time { return fixedNow.Add(10 * time.Second) })
	cancelled, err := uc.CancelMine(ctx, ana, "ANA001")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = uc.CancelMine(ctx, ana, "ANA001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.CancelMine(ctx, ana, "GUEST1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.CancelMine(ctx, access.Guest, "GUEST1")
	assert.NoError(t, err)

	uc.SetClock(func() time.Time { return fixedNow.Add(31 * time.Second) })
	_, err = uc.CancelMine(ctx, ana, "ANA002")
	assert.ErrorIs(t, err, domain.ErrCancelWindowClosed)
	o, _ := f.dir.Order("ANA002")
	assert.Equal(t, entity.OrderPending, o.Status)
}
