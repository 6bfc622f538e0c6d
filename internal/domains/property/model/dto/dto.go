package dto

import (
	"net/http"
	"roost/internal/domains/property/model"
	"roost/shared"
	gDto "roost/shared/dto"
	gModel "roost/shared/model"
	"roost/shared/timezone"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Title       string   `json:"title"       validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location"    validate:"required,max=200"`
	Price       string   `json:"price"       validate:"required"`
	Bedrooms    int      `json:"bedrooms"    validate:"required,min=0"`
	Bathrooms   int      `json:"bathrooms"   validate:"required,min=0"`
	MainImage   string   `json:"main_image"  validate:"required,url"`
	IsFeatured  bool     `json:"is_featured" validate:"omitempty"`
	AmenityIDs  []string `json:"amenity_ids" validate:"omitempty,dive,required"`
}

func (c *CreatePropertyRequest) ToModel() (model.Property, error) {
	price, err := decimal.NewFromString(c.Price)
	if err != nil {
		return model.Property{}, err
	}

	return model.Property{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Location:    c.Location,
		Price:       price,
		Rating:      decimal.Zero,
		ReviewCount: 0,
		Bedrooms:    c.Bedrooms,
		Bathrooms:   c.Bathrooms,
		MainImage:   c.MainImage,
		IsFeatured:  c.IsFeatured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdatePropertyRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=200"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=200"`
	Price       string `db:"price"       json:"price"       validate:"omitempty"`
	Bedrooms    int    `db:"bedrooms"    json:"bedrooms"    validate:"omitempty,min=0"`
	Bathrooms   int    `db:"bathrooms"   json:"bathrooms"   validate:"omitempty,min=0"`
	MainImage   string `db:"main_image"  json:"main_image"  validate:"omitempty,url"`
}

type AddPropertyImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

func (c *AddPropertyImageRequest) ToModel(propertyID string) model.PropertyImage {
	return model.PropertyImage{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		ImageURL:   c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// SearchPropertiesRequest captures the search filters from the query string.
// Zero values mean the filter is not applied.
type SearchPropertiesRequest struct {
	Location  string
	CheckIn   string
	CheckOut  string
	MinPrice  string
	MaxPrice  string
	Bedrooms  int
	Bathrooms int
	Amenities []string
}

func (s *SearchPropertiesRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Location = query.Get("location")
	s.CheckIn = query.Get("check_in")
	s.CheckOut = query.Get("check_out")
	s.MinPrice = query.Get("min_price")
	s.MaxPrice = query.Get("max_price")

	if bedrooms, err := strconv.Atoi(query.Get("bedrooms")); err == nil && bedrooms > 0 {
		s.Bedrooms = bedrooms
	}

	if bathrooms, err := strconv.Atoi(query.Get("bathrooms")); err == nil && bathrooms > 0 {
		s.Bathrooms = bathrooms
	}

	if amenities := query.Get("amenities"); amenities != "" {
		for _, amenity := range strings.Split(amenities, ",") {
			if trimmed := strings.TrimSpace(amenity); trimmed != "" {
				s.Amenities = append(s.Amenities, trimmed)
			}
		}
	}
}

// HasDateRange reports whether both stay dates were supplied.
func (s *SearchPropertiesRequest) HasDateRange() bool {
	return s.CheckIn != "" && s.CheckOut != ""
}

type PropertyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	ReviewCount int    `json:"review_count"`
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	MainImage   string `json:"main_image"`
	IsFeatured  bool   `json:"is_featured"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.Price = model.Price.StringFixed(2)
	r.Rating = model.Rating.StringFixed(1)
	r.ReviewCount = model.ReviewCount
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.MainImage = model.MainImage
	r.IsFeatured = model.IsFeatured
	r.Metadata.FromModel(model.Metadata)
}

type PropertyImageResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	ImageURL   string `json:"image_url"`
}

func (r *PropertyImageResponse) FromModel(model model.PropertyImage) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.ImageURL = model.ImageURL
}

type AmenityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
}

// PropertyDetailResponse is the single-property view with its gallery and
// amenities attached.
type PropertyDetailResponse struct {
	PropertyResponse
	Images    []PropertyImageResponse `json:"images"`
	Amenities []AmenityResponse       `json:"amenities"`
}

func (r *PropertyDetailResponse) FromModels(property model.Property, images []model.PropertyImage, amenities []model.Amenity) {
	r.PropertyResponse.FromModel(property)

	r.Images = make([]PropertyImageResponse, len(images))
	for i, image := range images {
		r.Images[i].FromModel(image)
	}

	r.Amenities = make([]AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		r.Amenities[i].FromModel(amenity)
	}
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
