package model

import (
	"roost/shared/model"
	"time"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldGuestName  = "guest_name"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldDate       = "date"
	FieldAvatar     = "avatar"
)

const DefaultAvatar = "/avatars/default.png"

type Review struct {
	ID         string    `db:"id"`
	PropertyID string    `db:"property_id"`
	GuestName  string    `db:"guest_name"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	Date       time.Time `db:"date"`
	Avatar     string    `db:"avatar"`
	model.Metadata
}
