package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roost/config"
	"roost/infras/otel/mocks"
	contactMocks "roost/internal/domains/contact/mocks"
	"roost/internal/domains/contact/model"
	"roost/internal/domains/contact/model/dto"
	"roost/internal/domains/contact/service"
	propertyMocks "roost/internal/domains/property/mocks"
	gDto "roost/shared/dto"
)

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPropertyRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateContactRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "general inquiry without property",
			req: dto.CreateContactRequest{
				Name:    "Ana Costa",
				Email:   "ana@example.com",
				Message: "Do you have monthly rates?",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "inquiry about an existing property",
			req: dto.CreateContactRequest{
				Name:       "Ana Costa",
				Email:      "ana@example.com",
				PropertyID: "property-id",
				Message:    "Is the loft pet friendly?",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "inquiry about a missing property",
			req: dto.CreateContactRequest{
				Name:       "Ana Costa",
				Email:      "ana@example.com",
				PropertyID: "nonexistent-id",
				Message:    "Is the loft pet friendly?",
			},
			setupMock: func() {
				mockPropertyRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateContactRequest{
				Name:    "Ana Costa",
				Email:   "ana@example.com",
				Message: "Do you have monthly rates?",
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
				assert.Equal(t, tt.req.Email, result.Email)
			}
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPropertyRepo, &config.Config{}, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("successful get all", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Contact{{ID: "contact-1", Name: "Ana Costa"}}, nil)

		result, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalData)
		assert.Len(t, result.Contacts, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}
