package factories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenu(t *testing.T) {
	menu := NewMenuItemFactory(69).CreateMenu(200)
	require.Len(t, menu, 200)

	for i, item := range menu {
		assert.Equal(t, int64(i+1), item.ID)
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.PriceCents, int64(minPriceCents))
		assert.Less(t, item.PriceCents, int64(maxPriceCents))
		assert.Zero(t, item.PriceCents%priceStep)
	}
}

func TestCreateMenuIsSeeded(t *testing.T) {
	assert.Equal(t, NewMenuItemFactory(7).CreateMenu(20), NewMenuItemFactory(7).CreateMenu(20))
}

func TestCreateIngredients(t *testing.T) {
	ingredients := NewIngredientFactory(69).CreateIngredients(30)
	require.Len(t, ingredients, 30)

	for i, ing := range ingredients {
		assert.Equal(t, int64(i+1), ing.ID)
		assert.NotEmpty(t, ing.Name)
		assert.GreaterOrEqual(t, ing.QtyPerUnit, 1)
		assert.LessOrEqual(t, ing.QtyPerUnit, 3)
	}
	assert.Equal(t, ingredients, NewIngredientFactory(69).CreateIngredients(30))
}

func TestCreateEmpty(t *testing.T) {
	assert.Empty(t, NewMenuItemFactory(1).CreateMenu(0))
	assert.Empty(t, NewIngredientFactory(1).CreateIngredients(0))
}
