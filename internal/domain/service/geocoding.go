// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"laundrify/internal/domain/entity"
)

// GeocodingProvider resolves between coordinates and structured place data.
// Providers are ordered in a fallback chain by the gateway, so every method
// must return a typed error rather than a zero value on miss.
type GeocodingProvider interface {
	// Name identifies the provider in logs and in Suggestion.Source.
	Name() string

	// ReverseGeocode resolves coordinates to the best matching place.
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error)

	// ForwardGeocode resolves a free-form address string to a place.
	ForwardGeocode(ctx context.Context, address string) (*entity.Place, error)
}

// SuggestProvider serves typeahead autocomplete for address search boxes.
// Separate from GeocodingProvider because not every geocoder supports
// session-scoped suggestions.
type SuggestProvider interface {
	Name() string

	// Suggest returns ranked completions for a partial query. sessionToken
	// groups keystrokes of one search session for billing purposes and may
	// be empty.
	Suggest(ctx context.Context, query string, sessionToken string) ([]entity.Suggestion, error)

	// ResolveSuggestion fetches full place details for a chosen suggestion.
	ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*entity.Place, error)
}

// GeocodeGateway fronts the whole provider chain. It degrades through
// fallback tiers instead of failing: Suggest always returns a usable list,
// and ReverseGeocode returns a best-effort place even with every live
// provider down.
type GeocodeGateway interface {
	// Suggest returns ranked completions for a partial query, capped by
	// configuration. It never returns an error to the caller.
	Suggest(ctx context.Context, query string, sessionToken string) []entity.Suggestion

	// ResolveSuggestion fetches full place details for a chosen suggestion.
	ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*entity.Place, error)

	// ReverseGeocode resolves coordinates to a place, retrying nearby points
	// when the first result lacks street-level detail.
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error)

	// ForwardGeocode resolves a free-form address string to a place.
	ForwardGeocode(ctx context.Context, address string) (*entity.Place, error)
}

// PositionSource abstracts the origin of device position fixes. The delivery
// layer passes fixes reported by clients; tests inject scripted sources.
type PositionSource interface {
	// Position returns the current fix. highAccuracy requests a GPS-grade
	// fix where the source distinguishes accuracy tiers.
	Position(ctx context.Context, highAccuracy bool) (*entity.GeoFix, error)
}
