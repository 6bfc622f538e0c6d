package email

import (
	"context"
	"roost/internal/domains/booking/model/dto"

	"github.com/rs/zerolog/log"
)

// Sender delivers guest notifications for booking events. The current
// implementation only logs the outgoing message; swapping in a real mail
// provider is a drop-in change behind the same method.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, event dto.BookingEvent) error {
	log.Info().
		Str("to", event.GuestEmail).
		Str("eventType", event.EventType).
		Str("bookingID", event.BookingID).
		Str("checkIn", event.CheckIn).
		Str("checkOut", event.CheckOut).
		Str("totalPrice", event.TotalPrice).
		Msg("Sending booking notification email")

	return nil
}
