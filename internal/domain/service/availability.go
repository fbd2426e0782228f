package service

import (
	"context"

	"laundrify/internal/domain/entity"
)

// AvailabilityQuery carries everything known about the candidate location.
// Coordinates are optional and allow zone matching when names are ambiguous.
type AvailabilityQuery struct {
	City        string
	Pincode     string
	FullAddress string
	Coordinates *entity.Coordinates
}

// AvailabilityChecker decides whether a location can be serviced. Checks fail
// closed: when no verdict can be determined the returned availability has
// IsAvailable false and Retryable true, and the save flow must block with a
// retry affordance.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, query AvailabilityQuery) (*entity.ServiceAvailability, error)
}
