package output

import "github.com/chrisdamba/cafedatasim/internal/models"

const (
	OrdersTable    = "orders"
	TicketsTable   = "tickets"
	InventoryTable = "inventory"
)

// OrderRecord is the serialised shape of an order in JSON, Parquet and Kafka
// output. CreatedAt keeps the offset-free ISO-8601 form of the CSV.
type OrderRecord struct {
	ID            int64  `json:"id" parquet:"name=id,type=INT64"`
	EmployeeID    int64  `json:"employee_id" parquet:"name=employee_id,type=INT64"`
	CustomerID    int64  `json:"customer_id" parquet:"name=customer_id,type=INT64"`
	Status        int64  `json:"status" parquet:"name=status,type=INT64"`
	SubtotalCents int64  `json:"subtotal_cents" parquet:"name=subtotal_cents,type=INT64"`
	TaxCents      int64  `json:"tax_cents" parquet:"name=tax_cents,type=INT64"`
	TotalCents    int64  `json:"total_cents" parquet:"name=total_cents,type=INT64"`
	CreatedAt     string `json:"created_at" parquet:"name=created_at,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type TicketRecord struct {
	ID             int64 `json:"id" parquet:"name=id,type=INT64"`
	OrderID        int64 `json:"order_id" parquet:"name=order_id,type=INT64"`
	MenuItemID     int64 `json:"menu_item_id" parquet:"name=menu_item_id,type=INT64"`
	Qty            int64 `json:"qty" parquet:"name=qty,type=INT64"`
	LineTotalCents int64 `json:"line_total_cents" parquet:"name=line_total_cents,type=INT64"`
}

type InventoryRecord struct {
	ID           int64 `json:"id" parquet:"name=id,type=INT64"`
	IngredientID int64 `json:"ingredient_id" parquet:"name=ingredient_id,type=INT64"`
	Stock        int64 `json:"stock" parquet:"name=stock,type=INT64"`
}

// OrderEvent is published to Kafka: the order with its tickets embedded.
type OrderEvent struct {
	OrderRecord
	RunID string         `json:"run_id"`
	Lines []TicketRecord `json:"lines"`
}

func NewOrderRecord(o models.Order) OrderRecord {
	return OrderRecord{
		ID:            o.ID,
		EmployeeID:    o.EmployeeID,
		CustomerID:    o.CustomerID,
		Status:        o.Status,
		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		CreatedAt:     o.CreatedAtString(),
	}
}

func NewTicketRecord(t models.Ticket) TicketRecord {
	return TicketRecord(t)
}

func NewInventoryRecord(r models.InventoryRecord) InventoryRecord {
	return InventoryRecord(r)
}
