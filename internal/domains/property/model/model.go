package model

import (
	"roost/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
	FieldBedrooms    = "bedrooms"
	FieldBathrooms   = "bathrooms"
	FieldMainImage   = "main_image"
	FieldIsFeatured  = "is_featured"
)

const (
	ImageTableName  = "property_images"
	ImageEntityName = "property_image"

	FieldImagePropertyID = "property_id"
	FieldImageURL        = "image_url"
)

const (
	AmenityTableName  = "amenities"
	AmenityEntityName = "amenity"

	FieldAmenityName = "name"
	FieldAmenityIcon = "icon"
)

const (
	PropertyAmenityTableName = "property_amenities"

	FieldAmenityID = "amenity_id"
)

type Property struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Location    string          `db:"location"`
	Price       decimal.Decimal `db:"price"`
	Rating      decimal.Decimal `db:"rating"`
	ReviewCount int             `db:"review_count"`
	Bedrooms    int             `db:"bedrooms"`
	Bathrooms   int             `db:"bathrooms"`
	MainImage   string          `db:"main_image"`
	IsFeatured  bool            `db:"is_featured"`
	model.Metadata
}

type PropertyImage struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	ImageURL   string `db:"image_url"`
	model.Metadata
}

type Amenity struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Icon string `db:"icon"`
	model.Metadata
}

type PropertyAmenity struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	AmenityID  string `db:"amenity_id"`
	model.Metadata
}
