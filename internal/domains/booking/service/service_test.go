package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roost/config"
	kafkaMocks "roost/infras/kafka/mocks"
	"roost/infras/otel/mocks"
	"roost/internal/domains/booking/engine"
	bookingMocks "roost/internal/domains/booking/mocks"
	"roost/internal/domains/booking/model"
	"roost/internal/domains/booking/model/dto"
	"roost/internal/domains/booking/repository"
	"roost/internal/domains/booking/service"
	propertyMocks "roost/internal/domains/property/mocks"
	propertyModel "roost/internal/domains/property/model"
	cacheMocks "roost/shared/cache/mocks"
	"roost/shared/failure"
	gModel "roost/shared/model"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.CleaningFee = "40"
	cfg.Booking.ServiceFeePercent = "0.07"
	cfg.Kafka.BookingTopic = "roost.booking.events"

	return cfg
}

func testProperty(id string) propertyModel.Property {
	return propertyModel.Property{
		ID:       id,
		Title:    "Seaside Loft",
		Location: "Lisbon, Portugal",
		Price:    decimal.RequireFromString("100"),
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	// events and cache invalidation run off the request path
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockPropertyRepo, newTestConfig(), mockCache, mockKafka, mockOtel)

	validReq := dto.CreateBookingRequest{
		PropertyID: "property-id",
		CheckIn:    "2026-06-01",
		CheckOut:   "2026-06-04",
		GuestName:  "Ana Costa",
		GuestEmail: "ana@example.com",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  func(error) bool
		wantTotal string
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "property-id", booking.PropertyID)
						assert.Equal(t, engine.StatusPending, booking.Status)
						assert.True(t, booking.TotalPrice.Equal(decimal.RequireFromString("361")))

						return nil
					})
			},
			wantTotal: "361.00",
		},
		{
			name: "invalid dates",
			req: dto.CreateBookingRequest{
				PropertyID: "property-id",
				CheckIn:    "2026-06-04",
				CheckOut:   "2026-06-01",
				GuestName:  "Ana Costa",
				GuestEmail: "ana@example.com",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "property not found",
			req:  validReq,
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
		{
			name: "dates already taken",
			req:  validReq,
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					Return(repository.ErrDateConflict)
			},
			wantErr:  true,
			wantCode: failure.IsConflict,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != nil {
					assert.True(t, tt.wantCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalPrice)
				assert.Equal(t, engine.StatusPending, result.Status)
			}
		})
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPropertyRepo, newTestConfig(), mockCache, mockKafka, mockOtel)

	req := dto.CheckAvailabilityRequest{
		CheckIn:  "2026-06-01",
		CheckOut: "2026-06-05",
	}

	taken := func(checkIn, checkOut, status string) engine.Stay {
		in, _ := time.Parse("2006-01-02", checkIn)
		out, _ := time.Parse("2006-01-02", checkOut)

		return engine.Stay{Range: engine.DateRange{CheckIn: in, CheckOut: out}, Status: status}
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "no existing stays",
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					ListForProperty(gomock.Any(), "property-id").
					Return(nil, nil)
			},
			wantAvailable: true,
		},
		{
			name: "overlapping stay blocks",
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					ListForProperty(gomock.Any(), "property-id").
					Return([]engine.Stay{taken("2026-06-03", "2026-06-08", engine.StatusConfirmed)}, nil)
			},
			wantAvailable: false,
		},
		{
			name: "cancelled stay does not block",
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					ListForProperty(gomock.Any(), "property-id").
					Return([]engine.Stay{taken("2026-06-01", "2026-06-05", engine.StatusCancelled)}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "property not found",
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-id"), nil)

				mockRepo.EXPECT().
					ListForProperty(gomock.Any(), "property-id").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CheckAvailability(context.Background(), "property-id", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, result.Available)
				assert.Equal(t, "2026-06-01", result.CheckIn)
				assert.Equal(t, "2026-06-05", result.CheckOut)
			}
		})
	}
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPropertyRepo, newTestConfig(), mockCache, mockKafka, mockOtel)

	mockPropertyRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testProperty("property-id"), nil)

	result, err := svc.Quote(context.Background(), "property-id", dto.CheckAvailabilityRequest{
		CheckIn:  "2026-06-01",
		CheckOut: "2026-06-04",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Nights)
	assert.Equal(t, "300.00", result.Subtotal)
	assert.Equal(t, "40.00", result.CleaningFee)
	assert.Equal(t, "21.00", result.ServiceFee)
	assert.Equal(t, "361.00", result.Total)
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPropertyRepo, newTestConfig(), mockCache, mockKafka, mockOtel)

	booking := model.Booking{
		ID:         "booking-id",
		PropertyID: "property-id",
		CheckIn:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestName:  "Ana Costa",
		GuestEmail: "ana@example.com",
		TotalPrice: decimal.RequireFromString("361"),
		Status:     engine.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: time.Now(),
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: "booking-id",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockPropertyRepo, newTestConfig(), mockCache, mockKafka, mockOtel)

	pending := model.Booking{
		ID:         "booking-id",
		PropertyID: "property-id",
		GuestEmail: "ana@example.com",
		Status:     engine.StatusPending,
	}

	cancelled := pending
	cancelled.Status = engine.StatusCancelled

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, engine.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "already cancelled is a no-op",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
