package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMenu(t *testing.T) {
	path := writeFile(t, "menu_items.csv", "id,name,base_price_cents\n1,Latte,475\n2, Chai ,400\n")

	menu, err := LoadMenu(path)
	require.NoError(t, err)
	assert.Equal(t, []models.MenuItem{
		{ID: 1, Name: "Latte", PriceCents: 475},
		{ID: 2, Name: "Chai", PriceCents: 400},
	}, menu)
}

func TestLoadMenuErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		empty   bool
	}{
		{name: "header only", content: "id,name,base_price_cents\n", empty: true},
		{name: "empty file", content: "", empty: true},
		{name: "bad price", content: "id,name,base_price_cents\n1,Latte,4.75\n"},
		{name: "bad id", content: "id,name,base_price_cents\nx,Latte,475\n"},
		{name: "short row", content: "id,name,base_price_cents\n1,Latte\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMenu(writeFile(t, "menu.csv", tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidConfig))
			assert.Equal(t, tt.empty, errors.Is(err, ErrEmptyCatalog))
		})
	}
}

func TestLoadMenuMissingFile(t *testing.T) {
	_, err := LoadMenu(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadIngredientsUsesOnlyID(t *testing.T) {
	path := writeFile(t, "ingredients.csv", "id,name,qty_per_unit\n10,Milk,12\n11\n12,Oat Milk\n")

	ingredients, err := LoadIngredients(path)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, models.Ingredient{ID: 10, Name: "Milk", QtyPerUnit: 12}, ingredients[0])
	assert.Equal(t, int64(11), ingredients[1].ID)
	assert.Equal(t, "Oat Milk", ingredients[2].Name)
}

func TestLoadIngredientsEmpty(t *testing.T) {
	_, err := LoadIngredients(writeFile(t, "ingredients.csv", "id,name\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	menu := []models.MenuItem{{ID: 1, Name: "Mocha, Iced", PriceCents: 525}}
	ingredients := []models.Ingredient{{ID: 1, Name: "Cocoa", QtyPerUnit: 3}}

	require.NoError(t, WriteMenu(filepath.Join(dir, "menu.csv"), menu))
	require.NoError(t, WriteIngredients(filepath.Join(dir, "ingredients.csv"), ingredients))

	cat, err := LoadFiles(filepath.Join(dir, "menu.csv"), filepath.Join(dir, "ingredients.csv"))
	require.NoError(t, err)
	assert.Equal(t, menu, cat.Menu)
	assert.Equal(t, ingredients, cat.Ingredients)
}

type stubMenuRepo struct {
	items    []models.MenuItem
	err      error
	countErr error
}

func (s *stubMenuRepo) BulkCreate(_ context.Context, items []models.MenuItem) error {
	s.items = append(s.items, items...)
	return s.err
}
func (s *stubMenuRepo) GetAll(context.Context) ([]models.MenuItem, error) { return s.items, s.err }
func (s *stubMenuRepo) Count(context.Context) (int, error)                 { return len(s.items), s.countErr }
func (s *stubMenuRepo) DeleteAll(context.Context) error {
	s.items = nil
	return nil
}

type stubIngredientRepo struct {
	items []models.Ingredient
	// dropped rows are accepted by BulkCreate but never stored
	dropped int
}

func (s *stubIngredientRepo) BulkCreate(_ context.Context, items []models.Ingredient) error {
	s.items = append(s.items, items[s.dropped:]...)
	return nil
}
func (s *stubIngredientRepo) GetAll(context.Context) ([]models.Ingredient, error) {
	return s.items, nil
}
func (s *stubIngredientRepo) Count(context.Context) (int, error) { return len(s.items), nil }
func (s *stubIngredientRepo) DeleteAll(context.Context) error {
	s.items = nil
	return nil
}

func TestLoadFromRepositories(t *testing.T) {
	ctx := context.Background()
	menuRepo := &stubMenuRepo{items: []models.MenuItem{{ID: 1, Name: "Latte", PriceCents: 475}}}
	ingredientRepo := &stubIngredientRepo{items: []models.Ingredient{{ID: 1, Name: "Milk"}}}

	cat, err := LoadFromRepositories(ctx, menuRepo, ingredientRepo)
	require.NoError(t, err)
	assert.Len(t, cat.Menu, 1)
	assert.Len(t, cat.Ingredients, 1)

	_, err = LoadFromRepositories(ctx, &stubMenuRepo{}, ingredientRepo)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = LoadFromRepositories(ctx, menuRepo, &stubIngredientRepo{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	boom := errors.New("connection refused")
	_, err = LoadFromRepositories(ctx, &stubMenuRepo{err: boom}, ingredientRepo)
	assert.ErrorIs(t, err, boom)
}

func TestSaveToRepositoriesReplacesRows(t *testing.T) {
	ctx := context.Background()
	menuRepo := &stubMenuRepo{items: []models.MenuItem{{ID: 9, Name: "Old Special", PriceCents: 900}}}
	ingredientRepo := &stubIngredientRepo{items: []models.Ingredient{{ID: 9}}}
	cat := &Catalog{
		Menu:        []models.MenuItem{{ID: 1, Name: "Latte", PriceCents: 475}, {ID: 2, Name: "Scone", PriceCents: 325}},
		Ingredients: []models.Ingredient{{ID: 1, Name: "Milk", QtyPerUnit: 1}},
	}

	require.NoError(t, SaveToRepositories(ctx, menuRepo, ingredientRepo, cat))
	assert.Equal(t, cat.Menu, menuRepo.items)
	assert.Equal(t, cat.Ingredients, ingredientRepo.items)

	loaded, err := LoadFromRepositories(ctx, menuRepo, ingredientRepo)
	require.NoError(t, err)
	assert.Equal(t, cat, loaded)
}

func TestSaveToRepositoriesChecksCounts(t *testing.T) {
	ctx := context.Background()
	cat := &Catalog{
		Menu:        []models.MenuItem{{ID: 1, Name: "Latte", PriceCents: 475}},
		Ingredients: []models.Ingredient{{ID: 1}, {ID: 2}},
	}

	err := SaveToRepositories(ctx, &stubMenuRepo{}, &stubIngredientRepo{dropped: 1}, cat)
	assert.ErrorContains(t, err, "stored 1 menu items and 1 ingredients, expected 1 and 2")

	boom := errors.New("connection reset")
	err = SaveToRepositories(ctx, &stubMenuRepo{countErr: boom}, &stubIngredientRepo{}, cat)
	assert.ErrorIs(t, err, boom)

	err = SaveToRepositories(ctx, &stubMenuRepo{err: boom}, &stubIngredientRepo{}, cat)
	assert.ErrorIs(t, err, boom)
}

func TestSaveToRepositoriesRejectsEmpty(t *testing.T) {
	err := SaveToRepositories(context.Background(), &stubMenuRepo{}, &stubIngredientRepo{}, &Catalog{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
