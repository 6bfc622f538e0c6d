package property

import (
	"net/http"
	"roost/infras/otel"
	bookingDto "roost/internal/domains/booking/model/dto"
	bookingService "roost/internal/domains/booking/service"
	"roost/internal/domains/property/model"
	"roost/internal/domains/property/model/dto"
	"roost/internal/domains/property/service"
	reviewDto "roost/internal/domains/review/model/dto"
	reviewService "roost/internal/domains/review/service"
	"roost/shared/constant"
	gDto "roost/shared/dto"
	"roost/shared/validator"
	"roost/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Property
	bookingService bookingService.Booking
	reviewService  reviewService.Review
	otel           otel.Otel
}

func New(service service.Property, bookingService bookingService.Booking, reviewService reviewService.Review, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		reviewService:  reviewService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/featured", handler.GetFeaturedProperties)
		routerGroup.Get("/search", handler.SearchProperties)
		routerGroup.Get("/{id}", handler.GetPropertyByID)
		routerGroup.Patch("/{id}", handler.UpdateProperty)
		routerGroup.Delete("/{id}", handler.DeleteProperty)
		routerGroup.Get("/{id}/images", handler.GetPropertyImages)
		routerGroup.Post("/{id}/images", handler.AddPropertyImage)
		routerGroup.Get("/{id}/amenities", handler.GetPropertyAmenities)
		routerGroup.Get("/{id}/reviews", handler.GetPropertyReviews)
		routerGroup.Post("/{id}/reviews", handler.CreatePropertyReview)
		routerGroup.Post("/{id}/check-availability", handler.CheckAvailability)
		routerGroup.Post("/{id}/quote", handler.QuoteStay)
	})

	router.Get("/amenities", handler.GetAmenities)
}

// GetProperties retrieves all properties based on query parameters.
// @Summary Get all properties
// @Description Retrieve all properties with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location"
// @Param bedrooms query int false "Minimum number of bedrooms"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	properties, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// CreateProperty handles the creation of a new property listing.
// @Summary Create a new property
// @Description Create a new property listing with the provided details.
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Create Property Request"
// @Success 201 {object} response.Data[dto.PropertyResponse] "Property created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
func (handler *Handler) CreateProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	req := dto.CreatePropertyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	property, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Property created successfully")

	response.WithJSON(writer, http.StatusCreated, property)
}

// GetFeaturedProperties retrieves the featured property listings.
// @Summary Get featured properties
// @Description Retrieve featured properties ordered by rating.
// @Tags Property
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of properties to return"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of featured properties"
// @Failure 500 {object} response.Error
// @Router /v1/properties/featured [get]
func (handler *Handler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	properties, err := handler.service.Featured(ctx, queryParams.Limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// SearchProperties searches property listings.
// @Summary Search properties
// @Description Search properties by location, price range, size, amenities, and stay dates. Properties with conflicting reservations for the given dates are excluded.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Location to search in"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Param min_price query string false "Minimum nightly price"
// @Param max_price query string false "Maximum nightly price"
// @Param bedrooms query int false "Minimum number of bedrooms"
// @Param bathrooms query int false "Minimum number of bathrooms"
// @Param amenities query string false "Comma separated amenity names"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "Matching properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/search [get]
func (handler *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.SearchPropertiesRequest{}
	req.FromRequest(r)

	properties, err := handler.service.Search(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties searched successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID retrieves a property with its images and amenities.
// @Summary Get a property by ID
// @Description Retrieve a property by its unique identifier, including its gallery and amenities.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyDetailResponse] "Property details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// UpdateProperty updates an existing property by its ID.
// @Summary Update a property by ID
// @Description Update the details of an existing property listing.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Update Property Request"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [patch]
func (handler *Handler) UpdateProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePropertyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Property updated successfully")

	response.WithMessage(writer, http.StatusOK, "Property updated successfully")
}

// DeleteProperty deletes a property by its ID.
// @Summary Delete a property by ID
// @Description Remove a property listing.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property deleted successfully")

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}

// GetPropertyImages retrieves the gallery of a property.
// @Summary Get property images
// @Description Retrieve all gallery images of a property.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[[]dto.PropertyImageResponse] "Property images"
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/images [get]
func (handler *Handler) GetPropertyImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	images, err := handler.service.GetImages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}

// AddPropertyImage adds an image URL to a property's gallery.
// @Summary Add a property image
// @Description Attach an image URL to a property's gallery.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.AddPropertyImageRequest true "Add Property Image Request"
// @Success 201 {object} response.Message "Property image added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/images [post]
func (handler *Handler) AddPropertyImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPropertyImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddPropertyImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AddImage(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add property image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Property image added successfully")

	response.WithMessage(writer, http.StatusCreated, "Property image added successfully")
}

// GetPropertyAmenities retrieves the amenities of a property.
// @Summary Get property amenities
// @Description Retrieve all amenities attached to a property.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[[]dto.AmenityResponse] "Property amenities"
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/amenities [get]
func (handler *Handler) GetPropertyAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyAmenities")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	amenities, err := handler.service.GetAmenities(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property amenities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property amenities retrieved successfully")

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetAmenities retrieves the full amenity catalog.
// @Summary Get all amenities
// @Description Retrieve every amenity available for property listings.
// @Tags Property
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.AmenityResponse] "All amenities"
// @Failure 500 {object} response.Error
// @Router /v1/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenities")
	defer scope.End()

	amenities, err := handler.service.ListAllAmenities(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenities retrieved successfully")

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetPropertyReviews retrieves the reviews of a property.
// @Summary Get property reviews
// @Description Retrieve all reviews of a property, newest first.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[reviewDto.GetReviewsResponse] "Property reviews"
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/reviews [get]
func (handler *Handler) GetPropertyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyReviews")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reviews, err := handler.reviewService.ListForProperty(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// CreatePropertyReview adds a review to a property.
// @Summary Create a property review
// @Description Add a review to a property and refresh the property's average rating and review count.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reviewDto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[reviewDto.ReviewResponse] "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/reviews [post]
func (handler *Handler) CreatePropertyReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePropertyReview")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := reviewDto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	review, err := handler.reviewService.Create(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithJSON(writer, http.StatusCreated, review)
}

// CheckAvailability checks whether a property is free for a date range.
// @Summary Check availability
// @Description Report whether a property can be booked for the given half-open date range. Cancelled reservations never block a stay.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body bookingDto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[bookingDto.AvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/check-availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := bookingDto.CheckAvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	availability, err := handler.bookingService.CheckAvailability(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(writer, http.StatusOK, availability)
}

// QuoteStay prices a stay without committing it.
// @Summary Quote a stay
// @Description Compute the itemized price of a stay, including the cleaning fee and the service fee. The total is rounded once to two decimal places.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body bookingDto.CheckAvailabilityRequest true "Quote Request"
// @Success 200 {object} response.Data[bookingDto.QuoteResponse] "Itemized quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/quote [post]
func (handler *Handler) QuoteStay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteStay")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := bookingDto.CheckAvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	quote, err := handler.bookingService.Quote(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Stay quoted successfully")

	response.WithJSON(writer, http.StatusOK, quote)
}
