package model

import "roost/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID   = "id"
	FieldName = "name"
	FieldType = "type"
)

const (
	TypeCity    = "city"
	TypeState   = "state"
	TypeCountry = "country"
)

type Location struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Type string `db:"type"`
	model.Metadata
}
