package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetParallelism = 4

type parquetEncoder struct{}

func (parquetEncoder) ext() string { return ".parquet" }

func (parquetEncoder) encodeOrders(path string, orders []models.Order) error {
	return writeParquetFile(path, new(OrderRecord), len(orders), func(i int) interface{} {
		return NewOrderRecord(orders[i])
	})
}

func (parquetEncoder) encodeTickets(path string, tickets []models.Ticket) error {
	return writeParquetFile(path, new(TicketRecord), len(tickets), func(i int) interface{} {
		return NewTicketRecord(tickets[i])
	})
}

func (parquetEncoder) encodeInventory(path string, inventory []models.InventoryRecord) error {
	return writeParquetFile(path, new(InventoryRecord), len(inventory), func(i int) interface{} {
		return NewInventoryRecord(inventory[i])
	})
}

// writeParquetFile writes to a sibling temp path and renames it over path once
// the footer is flushed.
func writeParquetFile(path string, schema interface{}, n int, record func(i int) interface{}) (err error) {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	fw, err := local.NewLocalFileWriter(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create local file writer: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, schema, parquetParallelism)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := 0; i < n; i++ {
		if err := pw.Write(record(i)); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write row %d of %s: %w", i, path, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finish %s: %w", path, err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
