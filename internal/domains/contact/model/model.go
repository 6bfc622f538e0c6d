package model

import "roost/shared/model"

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPropertyID = "property_id"
	FieldMessage    = "message"
)

type Contact struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	PropertyID string `db:"property_id"`
	Message    string `db:"message"`
	model.Metadata
}
