package output

import (
	"encoding/json"
	"io"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/tabular"
)

// jsonEncoder writes one JSON object per line.
type jsonEncoder struct{}

func (jsonEncoder) ext() string { return ".json" }

func (jsonEncoder) encodeOrders(path string, orders []models.Order) error {
	return writeJSONLines(path, len(orders), func(i int) interface{} {
		return NewOrderRecord(orders[i])
	})
}

func (jsonEncoder) encodeTickets(path string, tickets []models.Ticket) error {
	return writeJSONLines(path, len(tickets), func(i int) interface{} {
		return NewTicketRecord(tickets[i])
	})
}

func (jsonEncoder) encodeInventory(path string, inventory []models.InventoryRecord) error {
	return writeJSONLines(path, len(inventory), func(i int) interface{} {
		return NewInventoryRecord(inventory[i])
	})
}

func writeJSONLines(path string, n int, record func(i int) interface{}) error {
	return tabular.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		for i := 0; i < n; i++ {
			if err := enc.Encode(record(i)); err != nil {
				return err
			}
		}
		return nil
	})
}
