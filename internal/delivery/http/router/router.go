// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"laundrify/internal/delivery/http/middleware"
	"laundrify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler      *handler.AddressHandler
	LocationHandler     *handler.LocationHandler
	ReferralHandler     *handler.ReferralHandler
	SessionHandler      *handler.SessionHandler
	IdentityMiddleware  *middleware.IdentityMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler      *handler.AddressHandler
	locationHandler     *handler.LocationHandler
	referralHandler     *handler.ReferralHandler
	sessionHandler      *handler.SessionHandler
	identityMiddleware  *middleware.IdentityMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:      params.AddressHandler,
		locationHandler:     params.LocationHandler,
		referralHandler:     params.ReferralHandler,
		sessionHandler:      params.SessionHandler,
		identityMiddleware:  params.IdentityMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Address book routes are owner-scoped
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.identityMiddleware.Resolve)
	{
		addressGroup.POST("", r.addressHandler.SaveAddress)
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/migrate", r.addressHandler.MigrateAddresses)
	}

	// Location resolution routes
	locationGroup := e.Group("/locations")
	{
		locationGroup.POST("/detect", r.locationHandler.DetectLocation)
		locationGroup.POST("/resolve", r.locationHandler.ResolveCoordinates)
		locationGroup.GET("/suggestions", r.locationHandler.Suggest)
		locationGroup.GET("/places/:place_id", r.locationHandler.ResolveSuggestion)
		locationGroup.POST("/prefill", r.locationHandler.PrefillAddress)
	}

	// Service-area validation, same shape the ordering flow calls
	e.POST("/detected-locations/check-availability", r.locationHandler.CheckAvailability)

	// Session recovery routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/restore", r.sessionHandler.Restore)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Referral sharing routes
	referralGroup := e.Group("/referrals")
	{
		referralGroup.GET("/:code/qr", r.referralHandler.GenerateQR)
		referralGroup.POST("/parse", r.referralHandler.ParseQR)
	}
}
