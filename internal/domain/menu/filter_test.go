package menu_test

import (
	"testing"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/menu"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []entity.MenuItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestApply_ZeroFilterKeepsCatalogOrder(t *testing.T) {
	got := menu.Apply(store.DefaultMenu(), menu.Filter{})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(got))
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	got := menu.Apply(store.DefaultMenu(), menu.Filter{Search: "  BURGER "})
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestApply_CategoryAndDiscount(t *testing.T) {
	items := store.DefaultMenu()

	assert.Equal(t, []int{4, 6, 10}, ids(menu.Apply(items, menu.Filter{Category: "More Fun"})))
	assert.Equal(t, []int{1, 3, 6, 9, 10}, ids(menu.Apply(items, menu.Filter{Category: menu.CategoryAll, OnlyDiscounted: true})))
}

func TestApply_MinRatingAndSort(t *testing.T) {
	items := store.DefaultMenu()

	high := menu.Apply(items, menu.Filter{MinRating: decimal.RequireFromString("4.9")})
	assert.Equal(t, []int{2, 4, 6, 9}, ids(high))

	lowHigh := menu.Apply(items, menu.Filter{Category: "Burger", Sort: menu.SortLowHigh})
	assert.Equal(t, []int{1, 2}, ids(lowHigh))

	highLow := menu.Apply(items, menu.Filter{Sort: menu.SortHighLow})
	require.Len(t, highLow, 10)
	assert.Equal(t, 9, highLow[0].ID)
	assert.Equal(t, 5, highLow[9].ID)
}

func TestApply_DoesNotShareDiscountPointers(t *testing.T) {
	items := store.DefaultMenu()
	got := menu.Apply(items, menu.Filter{OnlyDiscounted: true})
	*got[0].Discount = decimal.NewFromInt(99)
	assert.True(t, items[0].Discount.Equal(decimal.NewFromInt(10)))
}

func TestFilter_Validate(t *testing.T) {
	assert.NoError(t, menu.Filter{Category: "All", Sort: menu.SortHighLow}.Validate())
	assert.Error(t, menu.Filter{Category: "Sushi"}.Validate())
	assert.Error(t, menu.Filter{Sort: "random"}.Validate())
	assert.Error(t, menu.Filter{MinRating: decimal.NewFromInt(-1)}.Validate())
}
