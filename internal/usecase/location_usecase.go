package usecase

import (
	"context"

	"laundrify/internal/address"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
)

// ResolvedLocation bundles everything the address form needs after a
// coordinate or suggestion has been resolved into a place.
type ResolvedLocation struct {
	Place        *entity.Place               `json:"place"`
	Parsed       *entity.ParsedAddress       `json:"parsed"`
	Validation   address.ValidationResult    `json:"validation"`
	Availability *entity.ServiceAvailability `json:"availability,omitempty"`
}

// LocationUsecase defines the interface for location detection and
// coordinate-to-address resolution use cases
type LocationUsecase interface {
	// DetectLocation acquires the device position with progressive
	// accuracy and resolves it to an address. It degrades to a
	// configured fallback location instead of failing.
	DetectLocation(ctx context.Context) (*ResolvedLocation, error)

	// ResolveCoordinates reverse-geocodes the coordinates and parses the
	// result into form fields.
	ResolveCoordinates(ctx context.Context, coords entity.Coordinates) (*ResolvedLocation, error)

	// Suggest returns autocomplete suggestions for a partial query.
	// It always returns a usable list.
	Suggest(ctx context.Context, query string, sessionToken string) []entity.Suggestion

	// ResolveSuggestion resolves a previously returned suggestion to a
	// full place.
	ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*ResolvedLocation, error)

	// PrefillAddress parses a formatted address string, merges the
	// result into the user's current form fields without clobbering
	// anything they typed, and validates the outcome.
	PrefillAddress(formatted string, current *entity.ParsedAddress) (*entity.ParsedAddress, address.ValidationResult)

	// CheckAvailability runs a service-area check immediately.
	CheckAvailability(ctx context.Context, query service.AvailabilityQuery) (*entity.ServiceAvailability, error)

	// ScheduleAvailabilityCheck debounces rapid repeated checks for the
	// same key, such as map marker drags, and reports the verdict of the
	// last scheduled check to fn.
	ScheduleAvailabilityCheck(key string, query service.AvailabilityQuery, fn func(*entity.ServiceAvailability, error))
}
