package models

type Ingredient struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	QtyPerUnit int    `json:"qty_per_unit"`
}

// InventoryRecord is the stock level assigned to one ingredient for a run.
type InventoryRecord struct {
	ID           int64 `json:"id"`
	IngredientID int64 `json:"ingredient_id"`
	Stock        int64 `json:"stock"`
}

var InventoryHeader = []string{"id", "ingredient_id", "stock"}

func (r InventoryRecord) Row() []string {
	return []string{itoa(r.ID), itoa(r.IngredientID), itoa(r.Stock)}
}
