package service

import (
	"context"
	"errors"
	"fmt"
	"roost/config"
	"roost/infras/kafka"
	"roost/infras/otel"
	"roost/internal/domains/booking/engine"
	"roost/internal/domains/booking/model"
	"roost/internal/domains/booking/model/dto"
	"roost/internal/domains/booking/repository"
	propertyModel "roost/internal/domains/property/model"
	propertyRepo "roost/internal/domains/property/repository"
	"roost/shared"
	"roost/shared/cache"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"
	"roost/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, propertyID string, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	Quote(ctx context.Context, propertyID string, req dto.CheckAvailabilityRequest) (dto.QuoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
	fees         engine.FeeSchedule
}

func New(repo repository.Booking, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafkaClient,
		otel:         otel,
		fees:         feeScheduleFromConfig(cfg),
	}
}

func feeScheduleFromConfig(cfg *config.Config) engine.FeeSchedule {
	cleaningFee, err := decimal.NewFromString(cfg.Booking.CleaningFee)
	if err != nil {
		log.Error().Err(err).Str("value", cfg.Booking.CleaningFee).Msg("invalid cleaning fee configured, falling back to zero")

		cleaningFee = decimal.Zero
	}

	serviceFeePercent, err := decimal.NewFromString(cfg.Booking.ServiceFeePercent)
	if err != nil {
		log.Error().Err(err).Str("value", cfg.Booking.ServiceFeePercent).Msg("invalid service fee percent configured, falling back to zero")

		serviceFeePercent = decimal.Zero
	}

	return engine.FeeSchedule{
		CleaningFee:       cleaningFee,
		ServiceFeePercent: serviceFeePercent,
	}
}

// Create commits a reservation. The insert itself is the only arbiter of
// date conflicts: the prior availability read is advisory and a concurrent
// commit that wins the race surfaces as a conflict, never as a double
// booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateRange, err := req.DateRange()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	property, err := s.lookupProperty(ctx, req.PropertyID)
	if err != nil {
		return res, err
	}

	quote, err := engine.ComputeQuote(property.Price, dateRange, s.fees)
	if err != nil {
		log.Error().Err(err).Str("propertyID", req.PropertyID).Msg("failed to price booking")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	booking := req.ToModel(dateRange, quote.Total)

	if err = s.repo.InsertBooking(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return res, failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, dto.NewBookingEvent(dto.EventBookingCreated, booking))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, propertyID string, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateRange, err := req.DateRange()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.lookupProperty(ctx, propertyID); err != nil {
		return res, err
	}

	stays, err := s.repo.ListForProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to list stays")

		return res, fmt.Errorf("failed to list stays: %w", err)
	}

	available, err := engine.IsAvailable(stays, dateRange)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	return dto.AvailabilityResponse{
		PropertyID: propertyID,
		CheckIn:    dateRange.CheckIn.Format(constant.CalendarDateFormat),
		CheckOut:   dateRange.CheckOut.Format(constant.CalendarDateFormat),
		Available:  available,
	}, nil
}

func (s *serviceImpl) Quote(ctx context.Context, propertyID string, req dto.CheckAvailabilityRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateRange, err := req.DateRange()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	property, err := s.lookupProperty(ctx, propertyID)
	if err != nil {
		return res, err
	}

	quote, err := engine.ComputeQuote(property.Price, dateRange, s.fees)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.FromQuote(propertyID, dateRange, quote)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel marks a reservation cancelled. The record is kept and its nights
// immediately stop blocking new commits. Cancelling an already cancelled
// reservation is a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == engine.StatusCancelled {
		return nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        engine.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: booking.GuestEmail,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = engine.StatusCancelled
	s.publishEvent(ctx, dto.NewBookingEvent(dto.EventBookingCancelled, booking))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) lookupProperty(ctx context.Context, propertyID string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found") // nolint:wrapcheck
	}

	return property, nil
}

// publishEvent emits the booking event without blocking the request path.
// Delivery is best effort, a failed publish is logged and never fails the
// booking itself.
func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.BookingID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("eventType", event.EventType).Msg("failed to publish booking event")
		}
	}()
}
