package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roost/config"
	"roost/infras/otel/mocks"
	locationMocks "roost/internal/domains/location/mocks"
	"roost/internal/domains/location/model"
	"roost/internal/domains/location/model/dto"
	"roost/internal/domains/location/service"
	cacheMocks "roost/shared/cache/mocks"
	"roost/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func TestLocationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := locationMocks.NewMockLocation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	req := dto.CreateLocationRequest{Name: "Lisbon", Type: model.TypeCity}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  func(error) bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate name and type conflicts",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: failure.IsConflict,
		},
		{
			name: "exist check error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != nil {
					assert.True(t, tt.wantCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Lisbon", result.Name)
				assert.Equal(t, model.TypeCity, result.Type)
			}
		})
	}
}

func TestLocationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := locationMocks.NewMockLocation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.List(context.Background())
		assert.NoError(t, err)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Location{
				{ID: "location-1", Name: "Lisbon", Type: model.TypeCity},
				{ID: "location-2", Name: "Portugal", Type: model.TypeCountry},
			}, nil)

		result, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, result.Locations, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.List(context.Background())
		assert.Error(t, err)
	})
}
