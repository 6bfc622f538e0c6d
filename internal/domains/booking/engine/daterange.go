package engine

import (
	"errors"
	"time"

	"roost/shared/constant"
)

var (
	// ErrInvalidRange reports a stay of zero or negative length.
	ErrInvalidRange = errors.New("check-in date must be before check-out date")

	// ErrInvalidPrice reports a negative nightly price reaching the pricing path.
	ErrInvalidPrice = errors.New("nightly price must not be negative")
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// DateRange is a half-open stay interval [CheckIn, CheckOut) at calendar-day
// granularity. A checkout on day D and a check-in on day D do not conflict.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a validated day-granularity range from two timestamps.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	dateRange := DateRange{
		CheckIn:  Day(checkIn),
		CheckOut: Day(checkOut),
	}

	if err := dateRange.Validate(); err != nil {
		return DateRange{}, err
	}

	return dateRange, nil
}

// ParseDateRange builds a validated range from two calendar-date strings.
// Dates at this boundary carry no time-of-day component, so they are parsed
// in UTC rather than the application timezone to keep the calendar date intact.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(constant.CalendarDateFormat, checkIn)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}

	out, err := time.Parse(constant.CalendarDateFormat, checkOut)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}

	return NewDateRange(in, out)
}

// Validate enforces a strictly positive stay length.
func (r DateRange) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return ErrInvalidRange
	}

	return nil
}

// Nights is the number of nights covered by the range.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
// The canonical predicate for [a1,a2) and [b1,b2) is a1 < b2 && b1 < a2;
// every overlap decision in the codebase goes through this method.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}
