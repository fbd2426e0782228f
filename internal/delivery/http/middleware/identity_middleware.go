package middleware

import (
	deliverycontext "laundrify/internal/delivery/context"
	"laundrify/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderUserID carries the authenticated user identity, typically the
	// phone number used at login.
	HeaderUserID = "user-id"

	// HeaderDeviceID carries a stable per-device identifier so guests keep
	// one address book across visits.
	HeaderDeviceID = "x-device-id"

	guestPrefix = "guest_"
)

// IdentityMiddleware resolves the owner identity of each request. Logged-in
// users are identified by the user-id header; anyone else falls back to a
// device-scoped guest identity that a later login can migrate from.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity resolution middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Resolve attaches the owner identity to the request context.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID := c.Request().Header.Get(HeaderUserID)
		if ownerID == "" {
			if deviceID := c.Request().Header.Get(HeaderDeviceID); deviceID != "" {
				ownerID = guestPrefix + deviceID
			}
		}
		if ownerID == "" {
			return response.Unauthorized(c, "IDENTITY_REQUIRED", "user-id or x-device-id header is required")
		}

		deliverycontext.SetOwnerID(c, ownerID)

		return next(c)
	}
}
