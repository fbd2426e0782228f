package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "laundrify/internal/delivery/context"
	"laundrify/internal/delivery/http/response"
	"laundrify/internal/domain/entity"
	"laundrify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address book handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// SaveAddressRequest represents the request body for saving an address
type SaveAddressRequest struct {
	HouseNumber  string              `json:"house_number"`
	Street       string              `json:"street" validate:"required"`
	Landmark     string              `json:"landmark"`
	Area         string              `json:"area" validate:"required"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	Pincode      string              `json:"pincode" validate:"required"`
	Coordinates  *entity.Coordinates `json:"coordinates"`
	Label        string              `json:"label"`
	Type         string              `json:"type" validate:"omitempty,oneof=home work other"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
}

// MigrateAddressesRequest represents the request body for owner migration
type MigrateAddressesRequest struct {
	LegacyOwnerIDs []string `json:"legacy_owner_ids"`
}

// SaveAddress handles creating or updating an address
func (h *AddressHandler) SaveAddress(c echo.Context) error {
	ownerID := deliverycontext.GetOwnerID(c)

	var req SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SaveAddressInput{
		HouseNumber:  req.HouseNumber,
		Street:       req.Street,
		Landmark:     req.Landmark,
		Area:         req.Area,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.Pincode,
		Coordinates:  req.Coordinates,
		Label:        req.Label,
		Type:         entity.AddressType(req.Type),
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	}

	result, err := h.addressUC.SaveAddress(c.Request().Context(), ownerID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result, result.Message)
}

// ListAddresses handles listing the owner's addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	ownerID := deliverycontext.GetOwnerID(c)

	records, err := h.addressUC.ListAddresses(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records, "")
}

// DeleteAddress handles deleting one address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	ownerID := deliverycontext.GetOwnerID(c)

	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Address id is required")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), ownerID, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}

// MigrateAddresses folds guest address books into the logged-in identity.
// Called right after login so addresses saved before authentication follow
// the user.
func (h *AddressHandler) MigrateAddresses(c echo.Context) error {
	ownerID := deliverycontext.GetOwnerID(c)

	var req MigrateAddressesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid migration input")
	}

	moved, err := h.addressUC.MigrateOwner(c.Request().Context(), ownerID, req.LegacyOwnerIDs...)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int{"moved": moved}, "Addresses migrated")
}
