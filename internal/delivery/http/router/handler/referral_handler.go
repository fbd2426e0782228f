package handler

import (
	"log/slog"
	"net/http"

	"laundrify/internal/delivery/http/response"
	"laundrify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// ReferralHandler holds dependencies for referral sharing handlers
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// ParseReferralRequest represents the request body for parsing scanned QR data
type ParseReferralRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// GenerateQR renders the referral share QR code as a PNG image
func (h *ReferralHandler) GenerateQR(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Referral code is required")
	}

	png, err := h.referralUC.GenerateShareQR(c.Request().Context(), code)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ParseQR extracts the referral code from scanned QR payload data
func (h *ReferralHandler) ParseQR(c echo.Context) error {
	var req ParseReferralRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	code, err := h.referralUC.ParseShareQR(c.Request().Context(), req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"referral_code": code}, "")
}
