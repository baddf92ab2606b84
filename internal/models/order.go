package models

import "time"

// TimestampLayout renders created_at as an ISO-8601 local datetime with no offset.
const TimestampLayout = "2006-01-02T15:04:05"

type Order struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	CustomerID    int64     `json:"customer_id"`
	Status        int64     `json:"status"`
	SubtotalCents int64     `json:"subtotal_cents"`
	TaxCents      int64     `json:"tax_cents"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"-"`
}

var OrderHeader = []string{
	"id", "employee_id", "customer_id", "status",
	"subtotal_cents", "tax_cents", "total_cents", "created_at",
}

func (o Order) CreatedAtString() string {
	return o.CreatedAt.Format(TimestampLayout)
}

func (o Order) Row() []string {
	return []string{
		itoa(o.ID),
		itoa(o.EmployeeID),
		itoa(o.CustomerID),
		itoa(o.Status),
		itoa(o.SubtotalCents),
		itoa(o.TaxCents),
		itoa(o.TotalCents),
		o.CreatedAtString(),
	}
}

// Ticket is a single line item of an order.
type Ticket struct {
	ID             int64 `json:"id"`
	OrderID        int64 `json:"order_id"`
	MenuItemID     int64 `json:"menu_item_id"`
	Qty            int64 `json:"qty"`
	LineTotalCents int64 `json:"line_total_cents"`
}

var TicketHeader = []string{"id", "order_id", "menu_item_id", "qty", "line_total_cents"}

func (t Ticket) Row() []string {
	return []string{
		itoa(t.ID),
		itoa(t.OrderID),
		itoa(t.MenuItemID),
		itoa(t.Qty),
		itoa(t.LineTotalCents),
	}
}
