package dto

import (
	"roost/internal/domains/location/model"
	gModel "roost/shared/model"
	"roost/shared/timezone"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,oneof=city state country"`
}

func (c *CreateLocationRequest) ToModel() model.Location {
	return model.Location{
		ID:   uuid.NewString(),
		Name: c.Name,
		Type: c.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location) {
	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
