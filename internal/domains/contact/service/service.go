package service

import (
	"context"
	"fmt"
	"roost/config"
	"roost/infras/otel"
	"roost/internal/domains/contact/model/dto"
	"roost/internal/domains/contact/repository"
	propertyModel "roost/internal/domains/property/model"
	propertyRepo "roost/internal/domains/property/repository"
	"roost/shared"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
}

type serviceImpl struct {
	repo         repository.Contact
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Contact, propertyRepo propertyRepo.Property, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PropertyID != constant.Empty {
		exist, err := s.propertyRepo.Exist(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if property exists")

			return res, fmt.Errorf("failed to check if property exists: %w", err)
		}

		if !exist {
			return res, failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
		}
	}

	contact := req.ToModel()

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return res, fmt.Errorf("failed to create contact: %w", err)
	}

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
