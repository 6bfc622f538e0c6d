package model

import (
	"roost/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

type Booking struct {
	ID         string          `db:"id"`
	PropertyID string          `db:"property_id"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	GuestName  string          `db:"guest_name"`
	GuestEmail string          `db:"guest_email"`
	GuestPhone string          `db:"guest_phone"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Status     string          `db:"status"`
	model.Metadata
}
