package service

import (
	"context"
	"fmt"
	"roost/config"
	"roost/infras/otel"
	propertyModel "roost/internal/domains/property/model"
	propertyRepo "roost/internal/domains/property/repository"
	"roost/internal/domains/review/model/dto"
	"roost/internal/domains/review/repository"
	"roost/shared"
	"roost/shared/cache"
	"roost/shared/constant"
	"roost/shared/failure"
	"roost/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cacheReviewsForProperty = "review:property"

type Review interface {
	Create(ctx context.Context, propertyID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	ListForProperty(ctx context.Context, propertyID string) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo         repository.Review
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Review, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create stores a review, then recomputes the property's review count and
// average rating from the full review set.
func (s *serviceImpl) Create(ctx context.Context, propertyID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	propertyFilter := shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName)

	exist, err := s.propertyRepo.Exist(ctx, propertyFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return res, fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	review := req.ToModel(propertyID)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	reviews, err := s.repo.ListForProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")

		return res, fmt.Errorf("failed to list reviews: %w", err)
	}

	// A lagging read replica may not see the insert yet. The set must
	// contain at least the review just written.
	if len(reviews) == 0 {
		reviews = append(reviews, review)
	}

	totalRating := decimal.Zero
	for _, r := range reviews {
		totalRating = totalRating.Add(decimal.NewFromInt(int64(r.Rating)))
	}

	rating := totalRating.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)

	updatedFields := map[string]any{
		propertyModel.FieldRating:      rating,
		propertyModel.FieldReviewCount: len(reviews),
		constant.FieldModifiedAt:       timezone.Now(),
	}

	if err = s.propertyRepo.Update(ctx, updatedFields, propertyFilter); err != nil {
		log.Error().Err(err).Msg("failed to update property rating")

		return res, fmt.Errorf("failed to update property rating: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheReviewsForProperty, propertyID)); err != nil {
			log.Error().Err(err).Msg("failed to delete reviews from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey("property:get", propertyID)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) ListForProperty(ctx context.Context, propertyID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheReviewsForProperty, propertyID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	reviews, err := s.repo.ListForProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")

		return res, fmt.Errorf("failed to list reviews: %w", err)
	}

	res.FromModels(reviews, len(reviews), len(reviews))
	res.TotalPage = 1

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}
