package models

// MenuItem is one sellable catalog entry. Prices are in integer cents.
type MenuItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"base_price_cents"`
}
