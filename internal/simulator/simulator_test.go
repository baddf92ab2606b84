package simulator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisdamba/cafedatasim/internal/catalog"
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(out string) *models.Config {
	return &models.Config{
		Weeks:         1,
		Beta:          1.0,
		Peaks:         1,
		Today:         date(2025, 9, 24),
		Seed:          69,
		OutputPath:    out,
		OutputFolder:  "data",
		DocsFolder:    "docs",
		OutputFormat:  "csv",
		CatalogSource: "file",
	}
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Menu: []models.MenuItem{{ID: 1, Name: "House Blend", PriceCents: 500}},
		Ingredients: []models.Ingredient{
			{ID: 1, Name: "Espresso Beans", QtyPerUnit: 1},
			{ID: 2, Name: "Whole Milk", QtyPerUnit: 1},
		},
	}
}

func TestGenerate(t *testing.T) {
	sim := NewSimulator(testConfig(t.TempDir()), testCatalog())
	ds, err := sim.Generate()
	require.NoError(t, err)

	assert.Equal(t, date(2025, 9, 17), ds.StartDate)
	assert.Equal(t, date(2025, 9, 24), ds.EndDate)
	require.Len(t, ds.PeakDays, 1)
	assert.False(t, ds.PeakDays[0].Before(ds.StartDate) || ds.PeakDays[0].After(ds.EndDate))
	assert.NotEmpty(t, ds.RunID)

	// seven plain days and one peak day, none inside a semester window
	assert.Len(t, ds.Orders, 7*210+630)
	for _, o := range ds.Orders {
		assert.Zero(t, o.SubtotalCents%500)
		assert.Equal(t, o.SubtotalCents+o.TaxCents, o.TotalCents)
	}

	require.Len(t, ds.Inventory, 2)
	assert.Equal(t, int64(0), ds.Inventory[0].ID)
	assert.Equal(t, int64(2), ds.Inventory[1].IngredientID)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := NewSimulator(testConfig(t.TempDir()), testCatalog()).Generate()
	require.NoError(t, err)
	b, err := NewSimulator(testConfig(t.TempDir()), testCatalog()).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.PeakDays, b.PeakDays)
	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.Tickets, b.Tickets)
	assert.Equal(t, a.Inventory, b.Inventory)
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	a, err := NewSimulator(testConfig(t.TempDir()), testCatalog()).Generate()
	require.NoError(t, err)

	cfg := testConfig(t.TempDir())
	cfg.Seed = 70
	b, err := NewSimulator(cfg, testCatalog()).Generate()
	require.NoError(t, err)

	assert.NotEqual(t, a.Tickets, b.Tickets)
}

func TestGenerateZeroWeeks(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Weeks = 0
	ds, err := NewSimulator(cfg, testCatalog()).Generate()
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(2025, 9, 24)}, ds.PeakDays)
	assert.Len(t, ds.Orders, 630)
}

func TestGenerateEmptyCatalog(t *testing.T) {
	cat := testCatalog()
	cat.Menu = nil
	_, err := NewSimulator(testConfig(t.TempDir()), cat).Generate()
	assert.ErrorIs(t, err, models.ErrInvalidConfig)

	cat = testCatalog()
	cat.Ingredients = nil
	_, err = NewSimulator(testConfig(t.TempDir()), cat).Generate()
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
}

func TestGenerateReportsProgress(t *testing.T) {
	progress := filepath.Join(t.TempDir(), "progress")
	f, err := os.Create(progress)
	require.NoError(t, err)
	defer f.Close()

	sim := NewSimulator(testConfig(t.TempDir()), testCatalog())
	sim.Progress = f
	_, err = sim.Generate()
	require.NoError(t, err)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func writeCatalogFiles(t *testing.T, dir string) (string, string) {
	t.Helper()
	cat := testCatalog()
	menuPath := filepath.Join(dir, "menu_items.csv")
	ingredientsPath := filepath.Join(dir, "ingredients.csv")
	require.NoError(t, catalog.WriteMenu(menuPath, cat.Menu))
	require.NoError(t, catalog.WriteIngredients(ingredientsPath, cat.Ingredients))
	return menuPath, ingredientsPath
}

func runInto(t *testing.T, out string) *Result {
	t.Helper()
	cfg := testConfig(out)
	cfg.MenuFile, cfg.IngredientsFile = writeCatalogFiles(t, t.TempDir())

	result, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	return result
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	result := runInto(t, out)

	abs, err := filepath.Abs(out)
	require.NoError(t, err)
	assert.Equal(t, abs, result.OutputPath)
	assert.Len(t, result.PeakDays, 1)
	assert.Equal(t, 7*210+630, result.Orders)
	assert.Equal(t, 2, result.Inventory)

	rows, err := tabular.ReadFile(filepath.Join(out, "data", "orders.csv"))
	require.NoError(t, err)
	assert.Equal(t, models.OrderHeader, rows[0])
	assert.Len(t, rows, result.Orders+1)

	rows, err = tabular.ReadFile(filepath.Join(out, "data", "tickets.csv"))
	require.NoError(t, err)
	assert.Equal(t, models.TicketHeader, rows[0])
	assert.Len(t, rows, result.Tickets+1)

	rows, err = tabular.ReadFile(filepath.Join(out, "data", "inventory.csv"))
	require.NoError(t, err)
	assert.Equal(t, models.InventoryHeader, rows[0])
	assert.Len(t, rows, 3)

	readme, err := os.ReadFile(filepath.Join(out, "docs", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "2025-09-17")
	assert.Contains(t, string(readme), "data/orders.csv")
	assert.FileExists(t, filepath.Join(out, "docs", "assumptions.json"))
}

func TestRunIsByteIdentical(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	runInto(t, first)
	runInto(t, second)

	for _, name := range []string{"orders.csv", "tickets.csv", "inventory.csv"} {
		a, err := os.ReadFile(filepath.Join(first, "data", name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, "data", name))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
	for _, name := range []string{"README.md", "assumptions.json"} {
		a, err := os.ReadFile(filepath.Join(first, "docs", name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, "docs", name))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestRunMissingCatalog(t *testing.T) {
	out := t.TempDir()
	cfg := testConfig(out)
	cfg.MenuFile = filepath.Join(out, "missing.csv")
	cfg.IngredientsFile = filepath.Join(out, "missing.csv")

	_, err := Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
	assert.NoDirExists(t, filepath.Join(out, "data"))
}
