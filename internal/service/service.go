// Package service implements the business operations of the logistics
// administration system: soft-delete CRUD over the relational entities,
// the order-creation workflow with inventory reservation, and the
// shipment join reconciliation. Every service is a concrete struct over
// an explicitly passed gorm handle; no ambient state.
package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateTime is returned when an order or shipment date/time
// string does not match the fixed wire format.
var ErrInvalidDateTime = errors.New("invalid date/time format")

// Fixed wire formats for order and shipment date/time fields.
const (
	dateLayout = "02-01-2006"
	timeLayout = "15:04"
)

// parseDateTime combines a day-month-year date string and an hour-minute
// time string into a single timestamp. Malformed input fails outright.
func parseDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidDateTime, date, clock)
	}
	return t, nil
}
