package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// OrderStatusCompleted is the only status generated orders carry.
	OrderStatusCompleted = 1

	EmployeePoolSize = 10
	CustomerPoolSize = 50

	// PlaceholderMenuItems and SpecialQueries are the catalog-size constants
	// reported alongside every run.
	PlaceholderMenuItems = 20
	SpecialQueries       = 5
)

// TaxRate is the sales tax applied to every order subtotal.
var TaxRate = decimal.RequireFromString("0.0625")

// Tax returns subtotal × TaxRate rounded half-to-even to whole cents.
func Tax(subtotalCents int64) int64 {
	return decimal.NewFromInt(subtotalCents).Mul(TaxRate).RoundBank(0).IntPart()
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
