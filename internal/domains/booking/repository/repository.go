package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"roost/infras/otel"
	"roost/infras/postgres"
	"roost/internal/domains/booking/engine"
	"roost/internal/domains/booking/model"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/failure"
	"roost/shared/logger"
	gRepo "roost/shared/repository"
	"time"

	"github.com/lib/pq"
)

// ErrDateConflict reports that another reservation already holds at least one
// night of the requested range. On Postgres it is raised by the exclusion
// constraint on the bookings table, so two commits racing for the same nights
// cannot both succeed.
var ErrDateConflict = errors.New("requested dates are no longer available")

// ReservationStore is the minimal surface the availability and commit paths
// need from a booking store.
type ReservationStore interface {
	InsertBooking(ctx context.Context, model model.Booking) error
	ListForProperty(ctx context.Context, propertyID string) ([]engine.Stay, error)
}

type Booking interface {
	ReservationStore
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertBooking writes a reservation in a single statement. The dates are
// guarded by the bookings exclusion constraint, so an overlapping active
// reservation surfaces here as ErrDateConflict rather than a partial write.
func (repo *repositoryImpl) InsertBooking(ctx context.Context, booking model.Booking) error {
	err := repo.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return ErrDateConflict
		}

		return translateStoreErr(err)
	}

	return nil
}

// translateStoreErr maps connection level failures to a retryable 503 so
// callers can tell an unreachable store apart from a bad statement. Anything
// else passes through untouched.
func translateStoreErr(err error) error {
	var pqErr *pq.Error

	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		return failure.ServiceUnavailable("booking store unreachable") // nolint:wrapcheck
	case errors.As(err, &pqErr) && string(pqErr.Code.Class()) == constant.PqErrorClassConnection:
		return failure.ServiceUnavailable("booking store unreachable") // nolint:wrapcheck
	}

	return err
}

func (repo *repositoryImpl) ListForProperty(ctx context.Context, propertyID string) (stays []engine.Stay, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListForProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = :%s",
		model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus,
		model.TableName,
		model.FieldPropertyID, model.FieldPropertyID,
	)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	rows := []struct {
		CheckIn  time.Time `db:"check_in"`
		CheckOut time.Time `db:"check_out"`
		Status   string    `db:"status"`
	}{}

	err = prepare.SelectContext(ctx, &rows, map[string]any{model.FieldPropertyID: propertyID})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list stays (%s): %w", model.EntityName, translateStoreErr(err))
	}

	stays = make([]engine.Stay, len(rows))
	for i, row := range rows {
		stays[i] = engine.Stay{
			Range:  engine.DateRange{CheckIn: engine.Day(row.CheckIn), CheckOut: engine.Day(row.CheckOut)},
			Status: row.Status,
		}
	}

	return stays, nil
}
