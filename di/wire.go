//go:build wireinject
// +build wireinject

package di

import (
	"roost/config"
	"roost/infras/kafka"
	"roost/infras/otel"
	"roost/infras/postgres"
	"roost/infras/redis"
	"roost/shared/cache"
	"roost/transport/http"
	"roost/transport/http/middleware"
	"roost/transport/http/router"

	bookingRepository "roost/internal/domains/booking/repository"
	bookingService "roost/internal/domains/booking/service"
	contactRepository "roost/internal/domains/contact/repository"
	contactService "roost/internal/domains/contact/service"
	locationRepository "roost/internal/domains/location/repository"
	locationService "roost/internal/domains/location/service"
	propertyRepository "roost/internal/domains/property/repository"
	propertyService "roost/internal/domains/property/service"
	reviewRepository "roost/internal/domains/review/repository"
	reviewService "roost/internal/domains/review/service"

	bookingHandler "roost/internal/handlers/booking"
	contactHandler "roost/internal/handlers/contact"
	locationHandler "roost/internal/handlers/location"
	propertyHandler "roost/internal/handlers/property"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

func provideReservationStore(repo bookingRepository.Booking) bookingRepository.ReservationStore {
	return repo
}

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	provideReservationStore,
	bookingService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	propertyDomain,
	reviewDomain,
	contactDomain,
	locationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	bookingHandler.New,
	contactHandler.New,
	locationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
