package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chrisdamba/cafedatasim/internal/models"
)

const (
	minLinesPerOrder = 1
	maxLinesPerOrder = 3

	// singleQtyProbability is the chance a line is for one unit instead of two.
	singleQtyProbability = 0.85
)

var ErrEmptyMenu = fmt.Errorf("%w: menu catalog is empty", models.ErrInvalidConfig)

// OrderSynthesizer materialises orders and tickets from a demand plan. Ids are
// shared across every call on the same synthesizer and never reset.
type OrderSynthesizer struct {
	rng  *rand.Rand
	menu []models.MenuItem

	nextOrderID  int64
	nextTicketID int64
}

func NewOrderSynthesizer(rng *rand.Rand, menu []models.MenuItem) (*OrderSynthesizer, error) {
	if len(menu) == 0 {
		return nil, ErrEmptyMenu
	}
	return &OrderSynthesizer{
		rng:          rng,
		menu:         menu,
		nextOrderID:  1,
		nextTicketID: 1,
	}, nil
}

// SynthesizeDay generates every order scheduled for day, hour by hour.
func (s *OrderSynthesizer) SynthesizeDay(day DayDemand) ([]models.Order, []models.Ticket) {
	orders := make([]models.Order, 0, day.Target)
	tickets := make([]models.Ticket, 0, day.Target*2)
	for hour, count := range day.Hourly {
		for i := 0; i < count; i++ {
			order, lines := s.synthesizeOrder(day.Date, hour)
			orders = append(orders, order)
			tickets = append(tickets, lines...)
		}
	}
	return orders, tickets
}

// Synthesize walks the plan day by day: it draws the day's hourly split,
// then every order of that day. onDay, when set, is called after each day.
func (s *OrderSynthesizer) Synthesize(plan *DemandPlan, onDay func(DayDemand)) ([]models.Order, []models.Ticket) {
	total := plan.TotalOrders()
	orders := make([]models.Order, 0, total)
	tickets := make([]models.Ticket, 0, total*2)
	for i := range plan.Days {
		day := &plan.Days[i]
		day.Distribute(s.rng)

		o, t := s.SynthesizeDay(*day)
		orders = append(orders, o...)
		tickets = append(tickets, t...)
		if onDay != nil {
			onDay(*day)
		}
	}
	return orders, tickets
}

// synthesizeOrder draws, in order: the line count, each line's item and
// quantity, then employee, customer, minute and second.
func (s *OrderSynthesizer) synthesizeOrder(day time.Time, hour int) (models.Order, []models.Ticket) {
	orderID := s.nextOrderID
	s.nextOrderID++

	lineCount := minLinesPerOrder + s.rng.Intn(maxLinesPerOrder-minLinesPerOrder+1)
	tickets := make([]models.Ticket, 0, lineCount)
	var subtotal int64
	for i := 0; i < lineCount; i++ {
		item := s.menu[s.rng.Intn(len(s.menu))]
		qty := int64(1)
		if s.rng.Float64() >= singleQtyProbability {
			qty = 2
		}
		lineTotal := item.PriceCents * qty
		subtotal += lineTotal

		tickets = append(tickets, models.Ticket{
			ID:             s.nextTicketID,
			OrderID:        orderID,
			MenuItemID:     item.ID,
			Qty:            qty,
			LineTotalCents: lineTotal,
		})
		s.nextTicketID++
	}

	tax := models.Tax(subtotal)
	employee := int64(1 + s.rng.Intn(models.EmployeePoolSize))
	customer := int64(1 + s.rng.Intn(models.CustomerPoolSize))
	minute := s.rng.Intn(60)
	second := s.rng.Intn(60)

	y, m, d := day.Date()
	return models.Order{
		ID:            orderID,
		EmployeeID:    employee,
		CustomerID:    customer,
		Status:        models.OrderStatusCompleted,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		CreatedAt:     time.Date(y, m, d, hour, minute, second, 0, time.UTC),
	}, tickets
}
