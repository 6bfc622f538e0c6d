package service

import (
	"context"
	"fmt"
	"roost/config"
	"roost/infras/otel"
	"roost/internal/domains/booking/engine"
	bookingRepo "roost/internal/domains/booking/repository"
	"roost/internal/domains/property/model"
	"roost/internal/domains/property/model/dto"
	"roost/internal/domains/property/repository"
	"roost/shared"
	"roost/shared/cache"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"
	gModel "roost/shared/model"
	"roost/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty      = "property:get"
	cacheGetAllProperty   = "property:gets"
	cacheCountProperty    = "property:count"
	cacheFeaturedProperty = "property:featured"
	cacheAmenities        = "property:amenities"
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) (dto.PropertyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Featured(ctx context.Context, limit int) (dto.GetPropertiesResponse, error)
	Search(ctx context.Context, req dto.SearchPropertiesRequest, params gDto.QueryParams) (dto.GetPropertiesResponse, error)
	Get(ctx context.Context, id string) (dto.PropertyDetailResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, propertyID string, req dto.AddPropertyImageRequest) error
	GetImages(ctx context.Context, propertyID string) ([]dto.PropertyImageResponse, error)
	GetAmenities(ctx context.Context, propertyID string) ([]dto.AmenityResponse, error)
	ListAllAmenities(ctx context.Context) ([]dto.AmenityResponse, error)
}

type serviceImpl struct {
	repo        repository.Property
	reservation bookingRepo.ReservationStore
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Property, reservation bookingRepo.ReservationStore, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Property {
	return &serviceImpl{
		repo:        repo,
		reservation: reservation,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid price: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to create property")

		return res, fmt.Errorf("failed to create property: %w", err)
	}

	if len(req.AmenityIDs) > 0 {
		links := make([]model.PropertyAmenity, len(req.AmenityIDs))
		for i, amenityID := range req.AmenityIDs {
			links[i] = model.PropertyAmenity{
				ID:         uuid.NewString(),
				PropertyID: property.ID,
				AmenityID:  amenityID,
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
				},
			}
		}

		if err = s.repo.SetAmenities(ctx, links); err != nil {
			log.Error().Err(err).Msg("failed to attach amenities")

			return res, fmt.Errorf("failed to attach amenities: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
		shared.InvalidateCaches(c, s.cache, cacheFeaturedProperty)
	}()

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Featured(ctx context.Context, limit int) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = s.cfg.Booking.FeaturedLimit
	}

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   limit,
		SortBy:  model.FieldRating,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsFeatured,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheFeaturedProperty, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for featured properties")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured properties")

		return res, fmt.Errorf("failed to get featured properties: %w", err)
	}

	res.FromModels(models, len(models), limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured properties to cache")
		}
	}()

	return res, nil
}

// Search filters properties on the SQL side first, then drops candidates
// whose requested nights are already taken. The availability pass runs only
// when both stay dates are supplied.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchPropertiesRequest, params gDto.QueryParams) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := s.buildSearchFilter(ctx, req)
	if err != nil {
		return res, err
	}

	// Availability is checked per candidate after the query, so a database
	// page cut before that check would make the totals lie. Fetch the full
	// candidate set and cut the page from the filtered result instead.
	if req.HasDateRange() {
		unpaged := params
		unpaged.Page = 0
		unpaged.Limit = 0

		models, err := s.repo.GetAll(ctx, unpaged, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to search properties")

			return res, fmt.Errorf("failed to search properties: %w", err)
		}

		models, err = s.filterByAvailability(ctx, models, req.CheckIn, req.CheckOut)
		if err != nil {
			return res, err
		}

		res.FromModels(pageOf(models, params.Page, params.Limit), len(models), params.Limit)

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search properties")

		return res, fmt.Errorf("failed to search properties: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func pageOf(models []model.Property, page, limit int) []model.Property {
	if page <= 0 || limit <= 0 {
		return models
	}

	start := (page - 1) * limit
	if start >= len(models) {
		return []model.Property{}
	}

	end := start + limit
	if end > len(models) {
		end = len(models)
	}

	return models[start:end]
}

func (s *serviceImpl) buildSearchFilter(ctx context.Context, req dto.SearchPropertiesRequest) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if req.Location != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Value:    req.Location,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if req.MinPrice != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldPrice,
			Value:    req.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if req.MaxPrice != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldPrice,
			Value:    req.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	if req.Bedrooms > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBedrooms,
			Value:    req.Bedrooms,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if req.Bathrooms > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBathrooms,
			Value:    req.Bathrooms,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if len(req.Amenities) > 0 {
		ids, err := s.repo.PropertyIDsWithAmenities(ctx, req.Amenities)
		if err != nil {
			log.Error().Err(err).Msg("failed to filter properties by amenities")

			return filter, fmt.Errorf("failed to filter properties by amenities: %w", err)
		}

		if len(ids) == 0 {
			ids = []string{uuid.Nil.String()}
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    ids,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	return filter, nil
}

func (s *serviceImpl) filterByAvailability(ctx context.Context, models []model.Property, checkIn, checkOut string) ([]model.Property, error) {
	dateRange, err := engine.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	available := make([]model.Property, 0, len(models))

	for _, property := range models {
		stays, err := s.reservation.ListForProperty(ctx, property.ID)
		if err != nil {
			log.Error().Err(err).Str("propertyID", property.ID).Msg("failed to list stays")

			return nil, fmt.Errorf("failed to list stays: %w", err)
		}

		ok, err := engine.IsAvailable(stays, dateRange)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		if ok {
			available = append(available, property)
		}
	}

	return available, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list property images")

		return res, fmt.Errorf("failed to list property images: %w", err)
	}

	amenities, err := s.repo.ListAmenities(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list property amenities")

		return res, fmt.Errorf("failed to list property amenities: %w", err)
	}

	res.FromModels(property, images, amenities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePropertyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, constant.Empty)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidateProperty(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.invalidateProperty(ctx, id)

	return nil
}

func (s *serviceImpl) AddImage(ctx context.Context, propertyID string, req dto.AddPropertyImageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(propertyID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.InsertImage(ctx, req.ToModel(propertyID)); err != nil {
		log.Error().Err(err).Msg("failed to add property image")

		return fmt.Errorf("failed to add property image: %w", err)
	}

	s.invalidateProperty(ctx, propertyID)

	return nil
}

func (s *serviceImpl) GetImages(ctx context.Context, propertyID string) (res []dto.PropertyImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	images, err := s.repo.ListImages(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list property images")

		return nil, fmt.Errorf("failed to list property images: %w", err)
	}

	res = make([]dto.PropertyImageResponse, len(images))
	for i, image := range images {
		res[i].FromModel(image)
	}

	return res, nil
}

func (s *serviceImpl) GetAmenities(ctx context.Context, propertyID string) (res []dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	amenities, err := s.repo.ListAmenities(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list property amenities")

		return nil, fmt.Errorf("failed to list property amenities: %w", err)
	}

	res = make([]dto.AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		res[i].FromModel(amenity)
	}

	return res, nil
}

func (s *serviceImpl) ListAllAmenities(ctx context.Context) (res []dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAllAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := cacheAmenities

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	amenities, err := s.repo.ListAllAmenities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list amenities")

		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}

	res = make([]dto.AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		res[i].FromModel(amenity)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateProperty(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
		shared.InvalidateCaches(c, s.cache, cacheFeaturedProperty)
	}()
}
