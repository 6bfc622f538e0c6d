package dto

import (
	"roost/internal/domains/booking/engine"
	"roost/internal/domains/booking/model"
	"roost/shared"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"   validate:"required,datetime=2006-01-02"`
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string `json:"guest_email" validate:"required,email,max=100"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,max=20"`
}

// DateRange parses the request dates into a validated half-open range.
func (c *CreateBookingRequest) DateRange() (engine.DateRange, error) {
	return engine.ParseDateRange(c.CheckIn, c.CheckOut)
}

func (c *CreateBookingRequest) ToModel(dateRange engine.DateRange, totalPrice decimal.Decimal) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		PropertyID: c.PropertyID,
		CheckIn:    dateRange.CheckIn,
		CheckOut:   dateRange.CheckOut,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		TotalPrice: totalPrice,
		Status:     engine.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.GuestEmail,
			ModifiedBy: c.GuestEmail,
		},
	}
}

type CheckAvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

func (c *CheckAvailabilityRequest) DateRange() (engine.DateRange, error) {
	return engine.ParseDateRange(c.CheckIn, c.CheckOut)
}

type AvailabilityResponse struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Available  bool   `json:"available"`
}

type QuoteResponse struct {
	PropertyID  string `json:"property_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	Subtotal    string `json:"subtotal"`
	CleaningFee string `json:"cleaning_fee"`
	ServiceFee  string `json:"service_fee"`
	Total       string `json:"total"`
}

func (r *QuoteResponse) FromQuote(propertyID string, dateRange engine.DateRange, quote engine.Quote) {
	r.PropertyID = propertyID
	r.CheckIn = dateRange.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = dateRange.CheckOut.Format(constant.CalendarDateFormat)
	r.Nights = quote.Nights
	r.Subtotal = quote.Subtotal.Round(2).StringFixed(2)
	r.CleaningFee = quote.CleaningFee.Round(2).StringFixed(2)
	r.ServiceFee = quote.ServiceFee.Round(2).StringFixed(2)
	r.Total = quote.Total.StringFixed(2)
}

type BookingResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	TotalPrice string `json:"total_price"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.TotalPrice = model.TotalPrice.StringFixed(2)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking events topic when a
// reservation is created or cancelled.
type BookingEvent struct {
	EventType  string `json:"event_type"`
	BookingID  string `json:"booking_id"`
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	TotalPrice string `json:"total_price"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID,
		PropertyID: booking.PropertyID,
		CheckIn:    booking.CheckIn.Format(constant.CalendarDateFormat),
		CheckOut:   booking.CheckOut.Format(constant.CalendarDateFormat),
		GuestName:  booking.GuestName,
		GuestEmail: booking.GuestEmail,
		TotalPrice: booking.TotalPrice.StringFixed(2),
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}
}
