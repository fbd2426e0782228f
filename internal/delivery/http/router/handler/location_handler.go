package handler

import (
	"log/slog"
	"net/http"

	"laundrify/internal/address"
	"laundrify/internal/delivery/http/response"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	"laundrify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location resolution handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ResolveCoordinatesRequest represents the request body for reverse geocoding
type ResolveCoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// PrefillAddressRequest represents the request body for smart autofill
type PrefillAddressRequest struct {
	FormattedAddress string                `json:"formatted_address" validate:"required"`
	Current          *entity.ParsedAddress `json:"current"`
}

// PrefillAddressResponse carries the merged form fields plus their validation
type PrefillAddressResponse struct {
	Address    *entity.ParsedAddress    `json:"address"`
	Validation address.ValidationResult `json:"validation"`
}

// CheckAvailabilityRequest represents the request body for service-area checks
type CheckAvailabilityRequest struct {
	City        string              `json:"city"`
	Pincode     string              `json:"pincode"`
	FullAddress string              `json:"full_address"`
	Coordinates *entity.Coordinates `json:"coordinates"`
}

// DetectLocation resolves the device's current position to an address
func (h *LocationHandler) DetectLocation(c echo.Context) error {
	resolved, err := h.locationUC.DetectLocation(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolved, "")
}

// ResolveCoordinates reverse-geocodes a coordinate pair into form fields
func (h *LocationHandler) ResolveCoordinates(c echo.Context) error {
	var req ResolveCoordinatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinates")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	resolved, err := h.locationUC.ResolveCoordinates(c.Request().Context(), entity.Coordinates{
		Lat: req.Lat,
		Lng: req.Lng,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolved, "")
}

// Suggest serves address autocomplete
func (h *LocationHandler) Suggest(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	suggestions := h.locationUC.Suggest(c.Request().Context(), query, c.QueryParam("session_token"))

	return response.Success(c, http.StatusOK, suggestions, "")
}

// ResolveSuggestion fetches full place details for a chosen suggestion
func (h *LocationHandler) ResolveSuggestion(c echo.Context) error {
	placeID := c.Param("place_id")
	if placeID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Place id is required")
	}

	resolved, err := h.locationUC.ResolveSuggestion(c.Request().Context(), placeID, c.QueryParam("session_token"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolved, "")
}

// PrefillAddress parses a formatted address and merges it into the current
// form state without overwriting what the user already typed
func (h *LocationHandler) PrefillAddress(c echo.Context) error {
	var req PrefillAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid autofill input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	merged, validation := h.locationUC.PrefillAddress(req.FormattedAddress, req.Current)

	return response.Success(c, http.StatusOK, PrefillAddressResponse{
		Address:    merged,
		Validation: validation,
	}, "")
}

// CheckAvailability runs a service-area check for a candidate location
func (h *LocationHandler) CheckAvailability(c echo.Context) error {
	var req CheckAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	verdict, err := h.locationUC.CheckAvailability(c.Request().Context(), service.AvailabilityQuery{
		City:        req.City,
		Pincode:     req.Pincode,
		FullAddress: req.FullAddress,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, verdict, "")
}
