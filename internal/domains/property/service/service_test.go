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
	"roost/infras/otel/mocks"
	"roost/internal/domains/booking/engine"
	bookingMocks "roost/internal/domains/booking/mocks"
	propertyMocks "roost/internal/domains/property/mocks"
	"roost/internal/domains/property/model"
	"roost/internal/domains/property/model/dto"
	"roost/internal/domains/property/service"
	cacheMocks "roost/shared/cache/mocks"
	gDto "roost/shared/dto"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.FeaturedLimit = 6

	return cfg
}

func testProperty(id, location string) model.Property {
	return model.Property{
		ID:       id,
		Title:    "Seaside Loft",
		Location: location,
		Price:    decimal.RequireFromString("120"),
		Rating:   decimal.RequireFromString("4.8"),
		Bedrooms: 2,
	}
}

func stay(checkIn, checkOut, status string) engine.Stay {
	in, _ := time.Parse("2006-01-02", checkIn)
	out, _ := time.Parse("2006-01-02", checkOut)

	return engine.Stay{Range: engine.DateRange{CheckIn: in, CheckOut: out}, Status: status}
}

func TestPropertyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreatePropertyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreatePropertyRequest{
				Title:    "Seaside Loft",
				Location: "Lisbon, Portugal",
				Price:    "120.00",
				Bedrooms: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "creation with amenities",
			req: dto.CreatePropertyRequest{
				Title:      "Seaside Loft",
				Location:   "Lisbon, Portugal",
				Price:      "120.00",
				AmenityIDs: []string{"amenity-1", "amenity-2"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					SetAmenities(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "invalid price",
			req: dto.CreatePropertyRequest{
				Title:    "Seaside Loft",
				Location: "Lisbon, Portugal",
				Price:    "not-a-number",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreatePropertyRequest{
				Title:    "Seaside Loft",
				Location: "Lisbon, Portugal",
				Price:    "120.00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
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
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, tt.req.Title, result.Title)
			}
		})
	}
}

func TestPropertyService_Featured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	t.Run("uses configured limit when none given", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
				assert.Equal(t, 6, params.Limit)
				assert.Equal(t, model.FieldRating, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Property{testProperty("property-1", "Lisbon")}, nil
			})

		result, err := svc.Featured(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, result.Properties, 1)
	})

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Featured(context.Background(), 3)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Featured(context.Background(), 3)
		assert.Error(t, err)
	})
}

func TestPropertyService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		req       dto.SearchPropertiesRequest
		setupMock func()
		wantIDs   []string
		wantTotal int
		wantErr   bool
	}{
		{
			name: "location filter without dates",
			req:  dto.SearchPropertiesRequest{Location: "Lisbon"},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Property{testProperty("property-1", "Lisbon")}, nil)
			},
			wantIDs:   []string{"property-1"},
			wantTotal: 1,
		},
		{
			name: "date range drops unavailable properties",
			req: dto.SearchPropertiesRequest{
				Location: "Lisbon",
				CheckIn:  "2026-06-01",
				CheckOut: "2026-06-05",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Property{
						testProperty("property-1", "Lisbon"),
						testProperty("property-2", "Lisbon"),
					}, nil)

				mockReservation.EXPECT().
					ListForProperty(gomock.Any(), "property-1").
					Return([]engine.Stay{stay("2026-06-03", "2026-06-08", engine.StatusConfirmed)}, nil)

				mockReservation.EXPECT().
					ListForProperty(gomock.Any(), "property-2").
					Return([]engine.Stay{stay("2026-06-05", "2026-06-10", engine.StatusConfirmed)}, nil)
			},
			wantIDs:   []string{"property-2"},
			wantTotal: 1,
		},
		{
			name: "amenities narrow the candidate set",
			req:  dto.SearchPropertiesRequest{Amenities: []string{"wifi", "pool"}},
			setupMock: func() {
				mockRepo.EXPECT().
					PropertyIDsWithAmenities(gomock.Any(), []string{"wifi", "pool"}).
					Return([]string{"property-1"}, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Property{testProperty("property-1", "Lisbon")}, nil)
			},
			wantIDs:   []string{"property-1"},
			wantTotal: 1,
		},
		{
			name: "invalid dates",
			req: dto.SearchPropertiesRequest{
				CheckIn:  "2026-06-05",
				CheckOut: "2026-06-01",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Property{testProperty("property-1", "Lisbon")}, nil)
			},
			wantErr: true,
		},
		{
			name: "count error",
			req:  dto.SearchPropertiesRequest{Location: "Lisbon"},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.SearchPropertiesRequest{Location: "Lisbon"},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Search(context.Background(), tt.req, params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, result.Properties, len(tt.wantIDs))
			assert.Equal(t, tt.wantTotal, result.TotalData)

			for i, id := range tt.wantIDs {
				assert.Equal(t, id, result.Properties[i].ID)
			}
		})
	}
}

func TestPropertyService_Search_DateFilterPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	req := dto.SearchPropertiesRequest{
		Location: "Lisbon",
		CheckIn:  "2026-06-01",
		CheckOut: "2026-06-05",
	}

	// The candidate fetch must ignore the requested page so the totals
	// reflect the whole filtered set, not one database page of it.
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
			assert.Zero(t, params.Page)
			assert.Zero(t, params.Limit)

			return []model.Property{
				testProperty("property-1", "Lisbon"),
				testProperty("property-2", "Lisbon"),
				testProperty("property-3", "Lisbon"),
			}, nil
		}).
		Times(2)

	mockReservation.EXPECT().
		ListForProperty(gomock.Any(), "property-1").
		Return([]engine.Stay{}, nil).
		Times(2)

	mockReservation.EXPECT().
		ListForProperty(gomock.Any(), "property-2").
		Return([]engine.Stay{stay("2026-06-03", "2026-06-08", engine.StatusConfirmed)}, nil).
		Times(2)

	mockReservation.EXPECT().
		ListForProperty(gomock.Any(), "property-3").
		Return([]engine.Stay{}, nil).
		Times(2)

	firstPage, err := svc.Search(context.Background(), req, gDto.QueryParams{Page: 1, Limit: 1})

	assert.NoError(t, err)
	assert.Len(t, firstPage.Properties, 1)
	assert.Equal(t, "property-1", firstPage.Properties[0].ID)
	assert.Equal(t, 2, firstPage.TotalData)
	assert.Equal(t, 2, firstPage.TotalPage)

	secondPage, err := svc.Search(context.Background(), req, gDto.QueryParams{Page: 2, Limit: 1})

	assert.NoError(t, err)
	assert.Len(t, secondPage.Properties, 1)
	assert.Equal(t, "property-3", secondPage.Properties[0].ID)
	assert.Equal(t, 2, secondPage.TotalData)
}

func TestPropertyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "detail includes images and amenities",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty("property-1", "Lisbon"), nil)

				mockRepo.EXPECT().
					ListImages(gomock.Any(), "property-1").
					Return([]model.PropertyImage{{ID: "image-1", PropertyID: "property-1", ImageURL: "/images/1.jpg"}}, nil)

				mockRepo.EXPECT().
					ListAmenities(gomock.Any(), "property-1").
					Return([]model.Amenity{{ID: "amenity-1", Name: "wifi"}}, nil)
			},
		},
		{
			name: "property not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "property-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "property-1", result.ID)
				assert.Len(t, result.Images, 1)
				assert.Len(t, result.Amenities, 1)
			}
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockReservation := bookingMocks.NewMockReservationStore(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockReservation, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdatePropertyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdatePropertyRequest{Title: "Renovated Loft"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "property not found",
			req:  dto.UpdatePropertyRequest{Title: "Renovated Loft"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdatePropertyRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "property-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
