package simulator

import (
	"math/rand"

	"github.com/chrisdamba/cafedatasim/internal/models"
)

const (
	minStock = 1000
	maxStock = 10000 // exclusive
)

// SynthesizeInventory assigns every ingredient, in catalog order, an id from 0
// and a stock level in [minStock, maxStock).
func SynthesizeInventory(rng *rand.Rand, ingredients []models.Ingredient) []models.InventoryRecord {
	inventory := make([]models.InventoryRecord, len(ingredients))
	for i, ingredient := range ingredients {
		inventory[i] = models.InventoryRecord{
			ID:           int64(i),
			IngredientID: ingredient.ID,
			Stock:        int64(minStock + rng.Intn(maxStock-minStock)),
		}
	}
	return inventory
}
