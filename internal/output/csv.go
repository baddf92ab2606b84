package output

import (
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/tabular"
)

type csvEncoder struct{}

func (csvEncoder) ext() string { return ".csv" }

func (csvEncoder) encodeOrders(path string, orders []models.Order) error {
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = o.Row()
	}
	return tabular.WriteFile(path, models.OrderHeader, rows)
}

func (csvEncoder) encodeTickets(path string, tickets []models.Ticket) error {
	rows := make([][]string, len(tickets))
	for i, t := range tickets {
		rows[i] = t.Row()
	}
	return tabular.WriteFile(path, models.TicketHeader, rows)
}

func (csvEncoder) encodeInventory(path string, inventory []models.InventoryRecord) error {
	rows := make([][]string, len(inventory))
	for i, r := range inventory {
		rows[i] = r.Row()
	}
	return tabular.WriteFile(path, models.InventoryHeader, rows)
}
