package simulator

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/chrisdamba/cafedatasim/internal/catalog"
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/lucsky/cuid"
	"github.com/op/go-logging"
	"github.com/schollz/progressbar/v3"
)

var log = logging.MustGetLogger("cafedatasim")

// Simulator owns the single random source of a run. Every component draws
// from Rng in a fixed order: peak days, then for each day its hourly rounding
// followed by its orders, then inventory.
type Simulator struct {
	Config   *models.Config
	Catalog  *catalog.Catalog
	Rng      *rand.Rand
	RunID    string
	Progress io.Writer
}

func NewSimulator(config *models.Config, cat *catalog.Catalog) *Simulator {
	return &Simulator{
		Config:  config,
		Catalog: cat,
		Rng:     rand.New(rand.NewSource(config.Seed)),
		RunID:   cuid.New(),
	}
}

// Generate performs the whole generation pass in memory.
func (s *Simulator) Generate() (*models.Dataset, error) {
	if s.Catalog == nil || len(s.Catalog.Menu) == 0 {
		return nil, ErrEmptyMenu
	}
	if len(s.Catalog.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: ingredient catalog is empty", catalog.ErrEmptyCatalog)
	}

	start, end := s.Config.StartDate(), s.Config.Today
	log.Infof("Simulation starts from %s to %s (run %s)", start.Format(models.DateLayout), end.Format(models.DateLayout), s.RunID)

	model := DemandModel{Beta: s.Config.Beta, Peaks: s.Config.Peaks}
	plan := model.Plan(s.Rng, start, end)
	log.Infof("Demand plan: %d days, %d peak days, %d orders", len(plan.Days), len(plan.PeakDays), plan.TotalOrders())

	synth, err := NewOrderSynthesizer(s.Rng, s.Catalog.Menu)
	if err != nil {
		return nil, err
	}

	bar := s.newProgressBar(len(plan.Days))
	orders, tickets := synth.Synthesize(plan, func(day DayDemand) {
		log.Debugf("%s: %d orders (multiplier %.2f)", day.Date.Format(models.DateLayout), day.Target, day.Multiplier)
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}

	inventory := SynthesizeInventory(s.Rng, s.Catalog.Ingredients)
	log.Infof("Generated %d orders, %d tickets, %d inventory records", len(orders), len(tickets), len(inventory))

	return &models.Dataset{
		RunID:     s.RunID,
		StartDate: start,
		EndDate:   end,
		PeakDays:  plan.PeakDays,
		Orders:    orders,
		Tickets:   tickets,
		Inventory: inventory,
	}, nil
}

func (s *Simulator) newProgressBar(days int) *progressbar.ProgressBar {
	if s.Progress == nil {
		return nil
	}
	return progressbar.NewOptions(days,
		progressbar.OptionSetWriter(s.Progress),
		progressbar.OptionSetDescription("synthesizing orders"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
