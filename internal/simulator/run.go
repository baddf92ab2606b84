package simulator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/chrisdamba/cafedatasim/internal/catalog"
	"github.com/chrisdamba/cafedatasim/internal/docs"
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/output"
	"github.com/chrisdamba/cafedatasim/internal/repositories/postgres"
)

// Result summarises a completed run.
type Result struct {
	RunID      string
	OutputPath string
	PeakDays   []string
	Orders     int
	Tickets    int
	Inventory  int
}

// Run loads the catalogs, generates the dataset, writes every configured
// destination and the assumption documents. Any failure aborts the run.
func Run(ctx context.Context, cfg *models.Config, progress io.Writer) (*Result, error) {
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d menu items and %d ingredients", len(cat.Menu), len(cat.Ingredients))

	writer, mirror, err := output.NewWriters(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	docsDir := filepath.Join(cfg.OutputPath, cfg.DocsFolder)
	if err := os.MkdirAll(docsDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: cannot create docs directory %s: %v", models.ErrInvalidConfig, docsDir, err)
	}

	sim := NewSimulator(cfg, cat)
	sim.Progress = progress
	ds, err := sim.Generate()
	if err != nil {
		return nil, err
	}

	if err := writer.WriteDataset(ctx, ds); err != nil {
		return nil, err
	}
	if err := writeDocs(cfg, docsDir, mirror); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		abs = cfg.OutputPath
	}
	return &Result{
		RunID:      ds.RunID,
		OutputPath: abs,
		PeakDays:   ds.PeakDayStrings(),
		Orders:     len(ds.Orders),
		Tickets:    len(ds.Tickets),
		Inventory:  len(ds.Inventory),
	}, nil
}

// LoadCatalog reads the menu and ingredients from the configured source.
func LoadCatalog(ctx context.Context, cfg *models.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Database.ConnString())
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return catalog.LoadFromRepositories(ctx,
			postgres.NewMenuItemRepository(pool),
			postgres.NewIngredientRepository(pool),
		)
	default:
		return catalog.LoadFiles(cfg.MenuFile, cfg.IngredientsFile)
	}
}

func writeDocs(cfg *models.Config, docsDir string, mirror *output.Mirror) error {
	assumptions := docs.FromConfig(cfg)

	tables := output.TableFiles(cfg.OutputFormat)
	for i, name := range tables {
		tables[i] = path.Join(filepath.ToSlash(cfg.OutputFolder), name)
	}

	readmePath := filepath.Join(docsDir, docs.ReadmeFile)
	if err := docs.WriteReadme(readmePath, assumptions, tables); err != nil {
		return err
	}
	assumptionsPath := filepath.Join(docsDir, docs.AssumptionsFile)
	if err := docs.WriteAssumptions(assumptionsPath, assumptions); err != nil {
		return err
	}
	return mirror.Upload(filepath.ToSlash(cfg.DocsFolder), readmePath, assumptionsPath)
}
