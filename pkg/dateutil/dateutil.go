package dateutil

import (
	"time"
)

// HoldingMonths counts the complete calendar months between a purchase and a
// redemption. A redemption on the last day of a shorter month completes the
// month (31 Jan -> 28 Feb is one month). Reversed dates yield a negative count.
func HoldingMonths(purchase, redemption time.Time) int {
	if redemption.Before(purchase) {
		return -HoldingMonths(redemption, purchase)
	}
	months := (redemption.Year()-purchase.Year())*12 + int(redemption.Month()-purchase.Month())
	if redemption.Day() < purchase.Day() && !IsLastDayOfMonth(redemption) {
		months--
	}
	return months
}

// IsLastDayOfMonth reports whether date falls on the final day of its month
func IsLastDayOfMonth(date time.Time) bool {
	return date.AddDate(0, 0, 1).Month() != date.Month()
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

