// Package model defines the value types shared by the parsing and
// aggregation layers: a sales transaction and its date/month grouping keys.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// ErrInvalidDate indicates a date string that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without time-of-day or location.
// It is comparable and safe to use as a map key, unlike time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}

	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// MonthOf returns the month grouping key for the date.
func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText renders the date in its wire format for JSON output.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalYAML renders the date in its wire format for YAML output.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Month is a (year, month) grouping key.
type Month struct {
	Year  int
	Month time.Month
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}

	return m.Month < other.Month
}

// String renders the month as "January 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// MarshalText renders the month as "2024-01" for JSON output.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))), nil
}

// MarshalYAML renders the month as "2024-01" for YAML output.
func (m Month) MarshalYAML() (any, error) {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)), nil
}

// Transaction is one sale event. Instances are immutable after parsing;
// the aggregator never mutates them.
type Transaction struct {
	Date    Date
	Hour    int
	Product string
	Staff   string
	Volume  int64
	Value   decimal.Decimal
}
