package models

import (
	"sort"
	"time"
)

// Dataset is everything a single generation pass produces.
type Dataset struct {
	RunID     string
	StartDate time.Time
	EndDate   time.Time
	PeakDays  []time.Time
	Orders    []Order
	Tickets   []Ticket
	Inventory []InventoryRecord
}

// PeakDayStrings returns the peak days sorted, de-duplicated and formatted
// as YYYY-MM-DD.
func (d *Dataset) PeakDayStrings() []string {
	seen := make(map[string]struct{}, len(d.PeakDays))
	days := make([]string, 0, len(d.PeakDays))
	for _, day := range d.PeakDays {
		s := day.Format(DateLayout)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		days = append(days, s)
	}
	sort.Strings(days)
	return days
}

// TicketsByOrder groups tickets under their order id.
func (d *Dataset) TicketsByOrder() map[int64][]Ticket {
	grouped := make(map[int64][]Ticket, len(d.Orders))
	for _, t := range d.Tickets {
		grouped[t.OrderID] = append(grouped[t.OrderID], t)
	}
	return grouped
}
