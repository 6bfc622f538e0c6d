package router

import (
	"roost/internal/handlers/booking"
	"roost/internal/handlers/contact"
	"roost/internal/handlers/location"
	"roost/internal/handlers/property"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property property.Handler
	Booking  booking.Handler
	Contact  contact.Handler
	Location location.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
