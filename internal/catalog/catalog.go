// Package catalog loads the static menu and ingredient lists a run draws from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/repositories"
	"github.com/chrisdamba/cafedatasim/internal/tabular"
)

var ErrEmptyCatalog = fmt.Errorf("%w: empty catalog", models.ErrInvalidConfig)

var (
	MenuHeader       = []string{"id", "name", "base_price_cents"}
	IngredientHeader = []string{"id", "name", "qty_per_unit"}
)

type Catalog struct {
	Menu        []models.MenuItem
	Ingredients []models.Ingredient
}

// LoadMenu reads (id, name, base_price_cents) rows from a CSV file with a
// header row.
func LoadMenu(path string) ([]models.MenuItem, error) {
	rows, err := readBody(path)
	if err != nil {
		return nil, err
	}
	return ParseMenu(path, rows)
}

// ParseMenu converts header-less menu rows. source is only used in errors.
func ParseMenu(source string, rows [][]string) ([]models.MenuItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: menu %s has no items", ErrEmptyCatalog, source)
	}

	menu := make([]models.MenuItem, 0, len(rows))
	for i, fields := range rows {
		line := i + 2
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: %s line %d: expected id, name, price", models.ErrInvalidConfig, source, line)
		}
		id, err := parseID(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad menu item id: %v", models.ErrInvalidConfig, source, line, err)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w: %s line %d: bad price %q", models.ErrInvalidConfig, source, line, fields[2])
		}
		menu = append(menu, models.MenuItem{
			ID:         id,
			Name:       strings.TrimSpace(fields[1]),
			PriceCents: price,
		})
	}
	return menu, nil
}

// LoadIngredients reads ingredient rows from a CSV file with a header row.
// Only the id column is required.
func LoadIngredients(path string) ([]models.Ingredient, error) {
	rows, err := readBody(path)
	if err != nil {
		return nil, err
	}
	return ParseIngredients(path, rows)
}

func ParseIngredients(source string, rows [][]string) ([]models.Ingredient, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: ingredients %s has no rows", ErrEmptyCatalog, source)
	}

	ingredients := make([]models.Ingredient, 0, len(rows))
	for i, fields := range rows {
		line := i + 2
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: %s line %d: missing ingredient id", models.ErrInvalidConfig, source, line)
		}
		id, err := parseID(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad ingredient id: %v", models.ErrInvalidConfig, source, line, err)
		}
		ingredient := models.Ingredient{ID: id}
		if len(fields) > 1 {
			ingredient.Name = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			ingredient.QtyPerUnit, _ = strconv.Atoi(strings.TrimSpace(fields[2]))
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// LoadFiles loads both catalogs from CSV files.
func LoadFiles(menuPath, ingredientsPath string) (*Catalog, error) {
	menu, err := LoadMenu(menuPath)
	if err != nil {
		return nil, err
	}
	ingredients, err := LoadIngredients(ingredientsPath)
	if err != nil {
		return nil, err
	}
	return &Catalog{Menu: menu, Ingredients: ingredients}, nil
}

// LoadFromRepositories reads both catalogs from the point-of-sale database.
func LoadFromRepositories(ctx context.Context, menuRepo repositories.MenuItemRepository, ingredientRepo repositories.IngredientRepository) (*Catalog, error) {
	menu, err := menuRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	if len(menu) == 0 {
		return nil, fmt.Errorf("%w: menu_items table has no rows", ErrEmptyCatalog)
	}
	ingredients, err := ingredientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: ingredients table has no rows", ErrEmptyCatalog)
	}
	return &Catalog{Menu: menu, Ingredients: ingredients}, nil
}

// SaveToRepositories replaces the stored menu and ingredients with cat and
// checks the stored row counts match.
func SaveToRepositories(ctx context.Context, menuRepo repositories.MenuItemRepository, ingredientRepo repositories.IngredientRepository, cat *Catalog) error {
	if len(cat.Menu) == 0 || len(cat.Ingredients) == 0 {
		return ErrEmptyCatalog
	}

	if err := menuRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear menu items: %w", err)
	}
	if err := ingredientRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if err := menuRepo.BulkCreate(ctx, cat.Menu); err != nil {
		return fmt.Errorf("failed to insert menu items: %w", err)
	}
	if err := ingredientRepo.BulkCreate(ctx, cat.Ingredients); err != nil {
		return fmt.Errorf("failed to insert ingredients: %w", err)
	}

	menuCount, err := menuRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	ingredientCount, err := ingredientRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count ingredients: %w", err)
	}
	if menuCount != len(cat.Menu) || ingredientCount != len(cat.Ingredients) {
		return fmt.Errorf("stored %d menu items and %d ingredients, expected %d and %d",
			menuCount, ingredientCount, len(cat.Menu), len(cat.Ingredients))
	}
	return nil
}

// WriteMenu and WriteIngredients persist catalogs in the format LoadMenu and
// LoadIngredients expect.
func WriteMenu(path string, menu []models.MenuItem) error {
	rows := make([][]string, len(menu))
	for i, item := range menu {
		rows[i] = []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			strconv.FormatInt(item.PriceCents, 10),
		}
	}
	return tabular.WriteFile(path, MenuHeader, rows)
}

func WriteIngredients(path string, ingredients []models.Ingredient) error {
	rows := make([][]string, len(ingredients))
	for i, ingredient := range ingredients {
		rows[i] = []string{
			strconv.FormatInt(ingredient.ID, 10),
			ingredient.Name,
			strconv.Itoa(ingredient.QtyPerUnit),
		}
	}
	return tabular.WriteFile(path, IngredientHeader, rows)
}

func readBody(path string) ([][]string, error) {
	rows, err := tabular.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: catalog %s not found", models.ErrInvalidConfig, path)
		}
		return nil, fmt.Errorf("%w: failed to read catalog %s: %v", models.ErrInvalidConfig, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
