package dto

import (
	"roost/internal/domains/contact/model"
	"roost/shared"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	PropertyID string `json:"property_id" validate:"omitempty"`
	Message    string `json:"message"     validate:"required"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Email:      c.Email,
		PropertyID: c.PropertyID,
		Message:    c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.Email,
			ModifiedBy: c.Email,
		},
	}
}

type ContactResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PropertyID string `json:"property_id"`
	Message    string `json:"message"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.PropertyID = model.PropertyID
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
