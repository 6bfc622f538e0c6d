package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roost/infras/otel"
	"roost/infras/postgres"
	"roost/internal/domains/property/model"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/logger"
	gRepo "roost/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Property interface {
	Insert(ctx context.Context, model model.Property) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertImage(ctx context.Context, image model.PropertyImage) error
	ListImages(ctx context.Context, propertyID string) ([]model.PropertyImage, error)
	ListAmenities(ctx context.Context, propertyID string) ([]model.Amenity, error)
	ListAllAmenities(ctx context.Context) ([]model.Amenity, error)
	SetAmenities(ctx context.Context, links []model.PropertyAmenity) error
	PropertyIDsWithAmenities(ctx context.Context, names []string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
	imageRepo gRepo.Repository[model.PropertyImage]
	linkRepo  gRepo.Repository[model.PropertyAmenity]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
		imageRepo:  gRepo.NewRepository[model.PropertyImage](model.ImageEntityName, model.ImageTableName, model.FieldID, db, otel),
		linkRepo:   gRepo.NewRepository[model.PropertyAmenity]("property_amenity", model.PropertyAmenityTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertImage(ctx context.Context, image model.PropertyImage) error {
	return repo.imageRepo.Insert(ctx, image)
}

func (repo *repositoryImpl) ListImages(ctx context.Context, propertyID string) (images []model.PropertyImage, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.ImageEntityName+".ListImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = :%s ORDER BY %s ASC",
		model.ImageTableName,
		model.FieldImagePropertyID, model.FieldImagePropertyID,
		constant.FieldCreatedAt,
	)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.ImageEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &images, map[string]any{model.FieldImagePropertyID: propertyID})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list images (%s): %w", model.ImageEntityName, err)
	}

	return images, nil
}

func (repo *repositoryImpl) ListAmenities(ctx context.Context, propertyID string) (amenities []model.Amenity, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.AmenityEntityName+".ListAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT a.* FROM %s a JOIN %s pa ON pa.%s = a.%s WHERE pa.%s = :%s ORDER BY a.%s ASC",
		model.AmenityTableName, model.PropertyAmenityTableName,
		model.FieldAmenityID, model.FieldID,
		model.FieldImagePropertyID, model.FieldImagePropertyID,
		model.FieldAmenityName,
	)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.AmenityEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &amenities, map[string]any{model.FieldImagePropertyID: propertyID})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list amenities (%s): %w", model.AmenityEntityName, err)
	}

	return amenities, nil
}

func (repo *repositoryImpl) ListAllAmenities(ctx context.Context) (amenities []model.Amenity, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.AmenityEntityName+".ListAllAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s ASC", model.AmenityTableName, model.FieldAmenityName)

	err = repo.db.Read.SelectContext(ctx, &amenities, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list all amenities (%s): %w", model.AmenityEntityName, err)
	}

	return amenities, nil
}

func (repo *repositoryImpl) SetAmenities(ctx context.Context, links []model.PropertyAmenity) error {
	if len(links) == 0 {
		return nil
	}

	return repo.linkRepo.InsertBulk(ctx, links)
}

// PropertyIDsWithAmenities returns the ids of properties that carry every one
// of the named amenities.
func (repo *repositoryImpl) PropertyIDsWithAmenities(ctx context.Context, names []string) (ids []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".PropertyIDsWithAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(names) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		"SELECT pa.%s FROM %s pa JOIN %s a ON a.%s = pa.%s WHERE a.%s IN (?) GROUP BY pa.%s HAVING COUNT(DISTINCT a.%s) = ?",
		model.FieldImagePropertyID,
		model.PropertyAmenityTableName, model.AmenityTableName,
		model.FieldID, model.FieldAmenityID,
		model.FieldAmenityName,
		model.FieldImagePropertyID,
		model.FieldAmenityName,
	)

	query, args, err := sqlx.In(query, names, len(names))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build amenity filter (%s): %w", model.EntityName, err)
	}

	query = repo.db.Read.Rebind(query)

	err = repo.db.Read.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to filter properties by amenities (%s): %w", model.EntityName, err)
	}

	return ids, nil
}
