package output

import (
	"context"
	"path/filepath"

	"github.com/chrisdamba/cafedatasim/internal/models"
)

type tableEncoder interface {
	ext() string
	encodeOrders(path string, orders []models.Order) error
	encodeTickets(path string, tickets []models.Ticket) error
	encodeInventory(path string, inventory []models.InventoryRecord) error
}

// FileWriter writes the orders, tickets and inventory tables as one file each.
// Files are replaced atomically, so a failed run never leaves a torn table.
type FileWriter struct {
	dir     string
	encoder tableEncoder
	mirror  *Mirror
	written []string
}

func (f *FileWriter) Path(table string) string {
	return filepath.Join(f.dir, table+f.encoder.ext())
}

// Files lists what the last WriteDataset produced.
func (f *FileWriter) Files() []string {
	return f.written
}

func (f *FileWriter) WriteDataset(ctx context.Context, ds *models.Dataset) error {
	f.written = f.written[:0]

	steps := []struct {
		table  string
		encode func(path string) error
	}{
		{OrdersTable, func(p string) error { return f.encoder.encodeOrders(p, ds.Orders) }},
		{TicketsTable, func(p string) error { return f.encoder.encodeTickets(p, ds.Tickets) }},
		{InventoryTable, func(p string) error { return f.encoder.encodeInventory(p, ds.Inventory) }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := f.Path(step.table)
		if err := step.encode(path); err != nil {
			return err
		}
		log.Debugf("Wrote %s", path)
		f.written = append(f.written, path)
	}

	return f.mirror.Upload("", f.written...)
}

func (f *FileWriter) Close() error {
	return nil
}

// TableFiles names the files a FileWriter of format produces, in write order.
func TableFiles(format string) []string {
	ext := "." + format
	return []string{OrdersTable + ext, TicketsTable + ext, InventoryTable + ext}
}
