package dto

import (
	"roost/internal/domains/review/model"
	"roost/shared"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"required"`
	Avatar    string `json:"avatar"     validate:"omitempty,url"`
}

func (c *CreateReviewRequest) ToModel(propertyID string) model.Review {
	avatar := c.Avatar
	if avatar == "" {
		avatar = model.DefaultAvatar
	}

	return model.Review{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		GuestName:  c.GuestName,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Date:       timezone.Now(),
		Avatar:     avatar,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.GuestName,
			ModifiedBy: c.GuestName,
		},
	}
}

type ReviewResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	GuestName  string `json:"guest_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Avatar     string `json:"avatar"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.GuestName = model.GuestName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Date = timezone.Format(model.Date, constant.DateFormat)
	r.Avatar = model.Avatar
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
