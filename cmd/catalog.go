package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/cafedatasim/internal/catalog"
	"github.com/chrisdamba/cafedatasim/internal/factories"
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/repositories/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

type catalogOptions struct {
	target           string
	menuPath         string
	ingredientsPath  string
	menuItems        int
	ingredientsCount int
	seed             int64
}

var catalogOpts catalogOptions

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Writes placeholder menu and ingredient catalogs to CSV files or Postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := buildCatalog(catalogOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building catalogs: %v\n", err)
			os.Exit(1)
		}

		switch catalogOpts.target {
		case "file":
			err = writeCatalogFiles(catalogOpts, cat)
		case "postgres":
			err = storeCatalogs(cmd.Context(), cat)
		default:
			err = fmt.Errorf("%w: unknown catalog target %q", models.ErrInvalidConfig, catalogOpts.target)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing catalogs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d menu items and %d ingredients to %s\n", len(cat.Menu), len(cat.Ingredients), catalogOpts.target)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogOpts.target, "target", "file", "Where to write the catalogs: file or postgres")
	catalogCmd.Flags().StringVar(&catalogOpts.menuPath, "menu", "data/menu_items.csv", "Menu catalog CSV to write")
	catalogCmd.Flags().StringVar(&catalogOpts.ingredientsPath, "ingredients", "data/ingredients.csv", "Ingredient catalog CSV to write")
	catalogCmd.Flags().IntVar(&catalogOpts.menuItems, "menu-items", models.PlaceholderMenuItems, "Number of menu items")
	catalogCmd.Flags().IntVar(&catalogOpts.ingredientsCount, "ingredients-count", 30, "Number of ingredients")
	catalogCmd.Flags().Int64Var(&catalogOpts.seed, "seed", 69, "Random seed")
}

func buildCatalog(opts catalogOptions) (*catalog.Catalog, error) {
	if opts.menuItems <= 0 || opts.ingredientsCount <= 0 {
		return nil, fmt.Errorf("%w: catalog sizes must be positive, got %d menu items and %d ingredients",
			models.ErrInvalidConfig, opts.menuItems, opts.ingredientsCount)
	}
	return &catalog.Catalog{
		Menu:        factories.NewMenuItemFactory(opts.seed).CreateMenu(opts.menuItems),
		Ingredients: factories.NewIngredientFactory(opts.seed).CreateIngredients(opts.ingredientsCount),
	}, nil
}

func writeCatalogFiles(opts catalogOptions, cat *catalog.Catalog) error {
	for _, p := range []string{opts.menuPath, opts.ingredientsPath} {
		if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", p, err)
		}
	}
	if err := catalog.WriteMenu(opts.menuPath, cat.Menu); err != nil {
		return err
	}
	return catalog.WriteIngredients(opts.ingredientsPath, cat.Ingredients)
}

// storeCatalogs seeds the menu_items and ingredients tables that
// catalog_source=postgres reads, using the database section of the config.
func storeCatalogs(ctx context.Context, cat *catalog.Catalog) error {
	cfg, err := models.LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("%w: postgres target needs database.host and database.dbname", models.ErrInvalidConfig)
	}

	pool, err := postgres.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		return err
	}
	defer pool.Close()

	return postgres.InTx(ctx, pool, func(tx pgx.Tx) error {
		if err := postgres.EnsureSchema(ctx, tx); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return catalog.SaveToRepositories(ctx,
			postgres.NewMenuItemRepository(tx),
			postgres.NewIngredientRepository(tx),
			cat,
		)
	})
}
