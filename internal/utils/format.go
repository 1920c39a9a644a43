package utils

import (
	"errors"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
)

// NotApplicable is printed in place of ratios that have no defined value.
const NotApplicable = "N/A"

// FormatCurrency renders an amount as dollars with two decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatUtilization renders a Manager.Utilization result, printing N/A for
// an empty fleet.
func FormatUtilization(percent decimal.Decimal, err error) string {
	if errors.Is(err, domain.ErrDivisionUndefined) {
		return NotApplicable
	}
	if err != nil {
		return "error: " + err.Error()
	}
	return percent.StringFixed(2) + "%"
}
