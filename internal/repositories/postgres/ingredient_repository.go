package postgres

import (
	"context"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/jackc/pgx/v5"
)

type IngredientRepository struct {
	db DBTX
}

func NewIngredientRepository(db DBTX) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) BulkCreate(ctx context.Context, ingredients []models.Ingredient) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"ingredients"},
		[]string{"id", "name", "qty_per_unit"},
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]interface{}, error) {
			return []interface{}{
				ingredients[i].ID,
				ingredients[i].Name,
				ingredients[i].QtyPerUnit,
			}, nil
		}),
	)
	return err
}

func (r *IngredientRepository) GetAll(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, qty_per_unit FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []models.Ingredient
	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.QtyPerUnit); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "ingredients")
}

func (r *IngredientRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, "ingredients")
}
