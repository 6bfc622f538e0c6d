package service

import (
	"context"
	"fmt"
	"roost/config"
	"roost/infras/otel"
	"roost/internal/domains/location/model"
	"roost/internal/domains/location/model/dto"
	"roost/internal/domains/location/repository"
	"roost/shared"
	"roost/shared/cache"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheLocations = "location:gets"

type Location interface {
	Create(ctx context.Context, req dto.CreateLocationRequest) (dto.LocationResponse, error)
	List(ctx context.Context) (dto.GetLocationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Location
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Location, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Location {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLocationRequest) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    req.Name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldType,
				Value:    req.Type,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if location exists")

		return res, fmt.Errorf("failed to check if location exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("location already exists") // nolint:wrapcheck
	}

	location := req.ToModel()

	if err = s.repo.Insert(ctx, location); err != nil {
		log.Error().Err(err).Msg("failed to create location")

		return res, fmt.Errorf("failed to create location: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheLocations)
	}()

	res.FromModel(location)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheLocations, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheLocations).Msg("cache hit for locations")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   1000,
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	locations, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list locations")

		return res, fmt.Errorf("failed to list locations: %w", err)
	}

	res.FromModels(locations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheLocations, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save locations to cache")
		}
	}()

	return res, nil
}
