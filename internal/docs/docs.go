// Package docs writes the human- and machine-readable record of a run's
// generation assumptions.
package docs

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/tabular"
)

const (
	ReadmeFile      = "README.md"
	AssumptionsFile = "assumptions.json"
)

type Assumptions struct {
	Weeks     int
	Beta      float64
	Peaks     int
	StartDate time.Time
	EndDate   time.Time
}

// FromConfig derives the assumptions of a run from its parameters.
func FromConfig(cfg *models.Config) Assumptions {
	return Assumptions{
		Weeks:     cfg.Weeks,
		Beta:      cfg.Beta,
		Peaks:     cfg.Peaks,
		StartDate: cfg.StartDate(),
		EndDate:   cfg.Today,
	}
}

type assumptionsRecord struct {
	AlphaWeeks     int     `json:"alpha_weeks"`
	BetaMillions   float64 `json:"beta_millions"`
	PhiPeaks       int     `json:"phi_peaks"`
	DeltaMenuItems int     `json:"delta_menu_items"`
	ThetaSpecial   int     `json:"theta_special"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
}

func (a Assumptions) record() assumptionsRecord {
	return assumptionsRecord{
		AlphaWeeks:     a.Weeks,
		BetaMillions:   a.Beta,
		PhiPeaks:       a.Peaks,
		DeltaMenuItems: models.PlaceholderMenuItems,
		ThetaSpecial:   models.SpecialQueries,
		StartDate:      a.StartDate.Format(models.DateLayout),
		EndDate:        a.EndDate.Format(models.DateLayout),
	}
}

// Readme renders the narrative summary.
func (a Assumptions) Readme(tableFiles []string) string {
	var b strings.Builder
	b.WriteString("Cafe Sales Seed Data\n\n")
	b.WriteString("Assumptions\n")
	fmt.Fprintf(&b, "- α weeks: %d\n", a.Weeks)
	fmt.Fprintf(&b, "- β million in sales: ~%.2fM targeted\n", a.Beta)
	fmt.Fprintf(&b, "- φ peak days: %d\n", a.Peaks)
	fmt.Fprintf(&b, "- δ menu items: %d placeholder items\n", models.PlaceholderMenuItems)
	fmt.Fprintf(&b, "- θ special queries: %d included\n", models.SpecialQueries)
	fmt.Fprintf(&b, "- Time window: %s through %s\n",
		a.StartDate.Format(models.DateLayout), a.EndDate.Format(models.DateLayout))
	b.WriteString("\nFiles\n")
	for _, f := range tableFiles {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	fmt.Fprintf(&b, "- %s\n", AssumptionsFile)
	return b.String()
}

// WriteReadme writes the narrative summary to path.
func WriteReadme(path string, a Assumptions, tableFiles []string) error {
	return tabular.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, a.Readme(tableFiles))
		return err
	})
}

// WriteAssumptions writes the structured record to path as indented JSON.
func WriteAssumptions(path string, a Assumptions) error {
	return tabular.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a.record())
	})
}
