package impl

import (
	"context"
	"log/slog"
	"time"

	"laundrify/config"
	"laundrify/internal/address"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	"laundrify/internal/usecase"
	"laundrify/internal/util"
)

type locationService struct {
	gateway      service.GeocodeGateway
	position     service.PositionSource
	availability service.AvailabilityChecker
	config       *config.Config
	logger       *slog.Logger
	debouncer    *util.Debouncer
}

// NewLocationService creates a new location resolution service instance.
// position may be nil when no position source is wired; DetectLocation then
// resolves the configured fallback location.
func NewLocationService(
	gateway service.GeocodeGateway,
	position service.PositionSource,
	availability service.AvailabilityChecker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	if cfg.Location == nil {
		cfg.Location = &config.LocationConfig{}
	}
	if cfg.Location.TargetAccuracyMeters <= 0 {
		cfg.Location.TargetAccuracyMeters = 20
	}
	if cfg.Location.HighAccuracyAttempts <= 0 {
		cfg.Location.HighAccuracyAttempts = 2
	}
	if cfg.Location.FastTimeout <= 0 {
		cfg.Location.FastTimeout = 5 * time.Second
	}
	if cfg.Location.AccurateTimeout <= 0 {
		cfg.Location.AccurateTimeout = 15 * time.Second
	}
	if cfg.Availability == nil {
		cfg.Availability = &config.AvailabilityConfig{}
	}
	if cfg.Availability.Debounce <= 0 {
		cfg.Availability.Debounce = 500 * time.Millisecond
	}

	return &locationService{
		gateway:      gateway,
		position:     position,
		availability: availability,
		config:       cfg,
		logger:       logger,
		debouncer:    util.NewDebouncer(cfg.Availability.Debounce),
	}
}

// DetectLocation acquires a device position with progressive accuracy: a
// fast low-accuracy fix for immediate feedback, then high-accuracy attempts
// until the target accuracy is reached or the attempts are exhausted, keeping
// the best fix seen. Every failure path degrades to the configured fallback
// location rather than an error.
func (s *locationService) DetectLocation(ctx context.Context) (*usecase.ResolvedLocation, error) {
	fix := s.acquireFix(ctx)
	if fix == nil {
		s.logger.Warn("position detection failed, using fallback location")

		return s.fallbackLocation(ctx)
	}

	resolved, err := s.ResolveCoordinates(ctx, fix.Coordinates)
	if err != nil {
		return s.fallbackLocation(ctx)
	}

	return resolved, nil
}

// ResolveCoordinates reverse-geocodes the coordinates, parses the place into
// form fields, and attaches validation plus a service-area verdict.
func (s *locationService) ResolveCoordinates(ctx context.Context, coords entity.Coordinates) (*usecase.ResolvedLocation, error) {
	place, err := s.gateway.ReverseGeocode(ctx, coords)
	if err != nil {
		return nil, err
	}

	return s.resolvePlace(ctx, place), nil
}

func (s *locationService) Suggest(ctx context.Context, query string, sessionToken string) []entity.Suggestion {
	return s.gateway.Suggest(ctx, query, sessionToken)
}

func (s *locationService) ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*usecase.ResolvedLocation, error) {
	place, err := s.gateway.ResolveSuggestion(ctx, placeID, sessionToken)
	if err != nil {
		return nil, err
	}

	return s.resolvePlace(ctx, place), nil
}

// PrefillAddress autofills the user's form from a formatted address string.
// Values the user already typed are preserved.
func (s *locationService) PrefillAddress(formatted string, current *entity.ParsedAddress) (*entity.ParsedAddress, address.ValidationResult) {
	parsed := address.ParseString(formatted)
	merged := address.Merge(parsed, current, address.DefaultMergeOptions)

	return merged, address.Validate(merged)
}

func (s *locationService) CheckAvailability(ctx context.Context, query service.AvailabilityQuery) (*entity.ServiceAvailability, error) {
	return s.availability.CheckAvailability(ctx, query)
}

// ScheduleAvailabilityCheck coalesces rapid repeated checks for the same
// key; only the last query within the debounce window reaches the checker.
func (s *locationService) ScheduleAvailabilityCheck(key string, query service.AvailabilityQuery, fn func(*entity.ServiceAvailability, error)) {
	s.debouncer.Trigger(key, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.config.Location.AccurateTimeout)
		defer cancel()

		fn(s.availability.CheckAvailability(ctx, query))
	})
}

// acquireFix runs the progressive accuracy loop. Returns nil when no fix at
// all could be obtained.
func (s *locationService) acquireFix(ctx context.Context) *entity.GeoFix {
	if s.position == nil {
		return nil
	}

	loc := s.config.Location

	var best *entity.GeoFix

	fastCtx, cancel := context.WithTimeout(ctx, loc.FastTimeout)
	fix, err := s.position.Position(fastCtx, false)
	cancel()
	if err == nil && fix != nil {
		best = fix
		if fix.Accuracy > 0 && fix.Accuracy <= loc.TargetAccuracyMeters {
			return best
		}
	}

	for attempt := 0; attempt < loc.HighAccuracyAttempts; attempt++ {
		accCtx, cancel := context.WithTimeout(ctx, loc.AccurateTimeout)
		fix, err := s.position.Position(accCtx, true)
		cancel()
		if err != nil || fix == nil {
			continue
		}

		if best == nil || fix.BetterThan(*best) {
			best = fix
		}
		if best.Accuracy > 0 && best.Accuracy <= loc.TargetAccuracyMeters {
			break
		}
	}

	return best
}

func (s *locationService) fallbackLocation(ctx context.Context) (*usecase.ResolvedLocation, error) {
	loc := s.config.Location
	coords := entity.Coordinates{Lat: loc.FallbackLat, Lng: loc.FallbackLng}

	resolved, err := s.ResolveCoordinates(ctx, coords)
	if err != nil {
		return nil, err
	}

	if loc.FallbackLabel != "" && resolved.Place != nil {
		resolved.Place.DisplayName = loc.FallbackLabel
	}

	return resolved, nil
}

func (s *locationService) resolvePlace(ctx context.Context, place *entity.Place) *usecase.ResolvedLocation {
	parsed := address.ParsePlace(place)
	resolved := &usecase.ResolvedLocation{
		Place:      place,
		Parsed:     parsed,
		Validation: address.Validate(parsed),
	}

	query := service.AvailabilityQuery{
		City:        parsed.City,
		Pincode:     parsed.PostalCode,
		FullAddress: place.FormattedAddress,
		Coordinates: place.Location,
	}
	verdict, err := s.availability.CheckAvailability(ctx, query)
	if err != nil {
		s.logger.Warn("availability check failed during resolution", slog.Any("error", err))
	} else {
		resolved.Availability = verdict
	}

	return resolved
}
