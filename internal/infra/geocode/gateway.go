package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"laundrify/config"
	"laundrify/internal/address"
	"laundrify/internal/domain/entity"
	domainerrors "laundrify/internal/domain/errors"
	"laundrify/internal/domain/service"

	"go.uber.org/fx"
)

// streetPatterns detect street-level detail in a formatted address string
// when structured components are missing it.
var streetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+[A-Z]?\s+(Street|St|Road|Rd|Lane|Ln|Avenue|Ave|Marg|Block)\b`),
	regexp.MustCompile(`(?i)\b(House|Plot|Door|Flat)\s+(No\.?\s*)?\d+`),
	regexp.MustCompile(`^\s*\d+[A-Z]?[\s,-]`),
	regexp.MustCompile(`(?i)\b\d+[A-Z]?\s+[A-Z][A-Za-z\s]+(Road|Street|Marg|Lane|Block|Gali)`),
}

// Gateway orchestrates the provider chain. Every live tier is allowed to
// fail; the chain only runs out at the terminal static tiers, which cannot.
type Gateway struct {
	providers      []service.GeocodingProvider
	suggesters     []service.SuggestProvider
	maxSuggestions int
	probeDelta     float64
	logger         *slog.Logger
}

// GatewayParams holds dependencies for the gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway builds the gateway from configuration. Keyed tiers are skipped
// when their key is absent; the keyless and static tiers always run.
func NewGateway(params GatewayParams) service.GeocodeGateway {
	cfg := params.Config.Geocode
	logger := params.Logger

	nominatim := NewNominatimProvider(cfg.Nominatim.BaseURL, cfg.Nominatim.Timeout)

	suggesters := make([]service.SuggestProvider, 0, 4)
	if cfg.Google.APIKey != "" {
		suggesters = append(suggesters, NewGoogleProvider(cfg.Google.APIKey, cfg.Google.BaseURL, cfg.Google.RegionCodes, cfg.Google.Timeout))
	} else {
		logger.Info("google places key not configured, skipping primary suggestion tier")
	}
	suggesters = append(suggesters, nominatim, NewStaticSuggester(), NewPassthroughSuggester())

	providers := make([]service.GeocodingProvider, 0, 2)
	if cfg.OpenCage.APIKey != "" {
		providers = append(providers, NewOpenCageProvider(cfg.OpenCage.APIKey, cfg.OpenCage.BaseURL, cfg.OpenCage.Timeout))
	} else {
		logger.Info("opencage key not configured, skipping tier")
	}
	providers = append(providers, nominatim)

	return &Gateway{
		providers:      providers,
		suggesters:     suggesters,
		maxSuggestions: cfg.MaxSuggestions,
		probeDelta:     cfg.ProbeDeltaDegrees,
		logger:         logger,
	}
}

// Suggest walks the suggestion tiers until one yields results. Tier errors
// are logged and treated as empty, so the caller always gets a list.
func (g *Gateway) Suggest(ctx context.Context, query string, sessionToken string) []entity.Suggestion {
	for _, suggester := range g.suggesters {
		suggestions, err := suggester.Suggest(ctx, query, sessionToken)
		if err != nil {
			g.logger.Warn("suggestion tier failed",
				slog.String("tier", suggester.Name()),
				slog.String("error", err.Error()),
			)

			continue
		}
		if len(suggestions) == 0 {
			continue
		}

		if len(suggestions) > g.maxSuggestions {
			suggestions = suggestions[:g.maxSuggestions]
		}

		return suggestions
	}

	return []entity.Suggestion{}
}

// ResolveSuggestion fetches place details from whichever tier recognizes the
// place id.
func (g *Gateway) ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*entity.Place, error) {
	for _, suggester := range g.suggesters {
		place, err := suggester.ResolveSuggestion(ctx, placeID, sessionToken)
		if err != nil {
			continue
		}

		return place, nil
	}

	return nil, domainerrors.ErrPlaceNotFound.WithDetails(fmt.Sprintf("place id %s", placeID))
}

// ReverseGeocode resolves coordinates through the provider chain. When the
// first usable result lacks street-level detail, four nearby points offset
// in the cardinal directions are probed and the first street-level result
// wins. With every provider down it falls back to the curated city table,
// so the caller always gets a place.
func (g *Gateway) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	place := g.reverseOnce(ctx, coords)
	if place != nil {
		if hasStreetLevelDetails(place) {
			return place, nil
		}

		if enhanced := g.probeForStreetDetail(ctx, coords); enhanced != nil {
			return enhanced, nil
		}

		return place, nil
	}

	// Best effort: name the nearest curated city.
	city, _ := NearestCity(coords)
	g.logger.Warn("all reverse geocode tiers failed, using curated fallback",
		slog.String("city", city.Name),
	)

	return &entity.Place{
		FormattedAddress: fmt.Sprintf("%.4f, %.4f, %s, %s, India", coords.Lat, coords.Lng, city.Name, city.State),
		Location:         &coords,
		Components: []entity.AddressComponent{
			{LongText: city.Name, ShortText: city.Name, Types: []string{"locality"}},
			{LongText: city.State, ShortText: city.State, Types: []string{"administrative_area_level_1"}},
		},
	}, nil
}

// ForwardGeocode resolves an address string through the provider chain.
func (g *Gateway) ForwardGeocode(ctx context.Context, addr string) (*entity.Place, error) {
	for _, provider := range g.providers {
		place, err := provider.ForwardGeocode(ctx, addr)
		if err != nil {
			g.logger.Warn("forward geocode tier failed",
				slog.String("tier", provider.Name()),
				slog.String("error", err.Error()),
			)

			continue
		}

		return place, nil
	}

	return nil, domainerrors.ErrGeocodeExhausted.WithDetails(addr)
}

func (g *Gateway) reverseOnce(ctx context.Context, coords entity.Coordinates) *entity.Place {
	for _, provider := range g.providers {
		place, err := provider.ReverseGeocode(ctx, coords)
		if err != nil {
			g.logger.Warn("reverse geocode tier failed",
				slog.String("tier", provider.Name()),
				slog.String("error", err.Error()),
			)

			continue
		}

		return place
	}

	return nil
}

// probeForStreetDetail retries the chain at four points roughly 10 meters
// away in the cardinal directions.
func (g *Gateway) probeForStreetDetail(ctx context.Context, coords entity.Coordinates) *entity.Place {
	probes := []entity.Coordinates{
		coords.Offset(g.probeDelta, 0),
		coords.Offset(-g.probeDelta, 0),
		coords.Offset(0, g.probeDelta),
		coords.Offset(0, -g.probeDelta),
	}

	for _, probe := range probes {
		place := g.reverseOnce(ctx, probe)
		if place != nil && hasStreetLevelDetails(place) {
			return place
		}
	}

	return nil
}

// hasStreetLevelDetails combines structured-component presence with pattern
// matching on the formatted string.
func hasStreetLevelDetails(place *entity.Place) bool {
	if place == nil {
		return false
	}

	parsed := address.ParsePlace(place)
	if parsed.HouseNumber != "" || place.Component("route") != "" {
		return true
	}

	for _, pattern := range streetPatterns {
		if pattern.MatchString(place.FormattedAddress) {
			return true
		}
	}

	return false
}

// Module provides the geocode FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGateway),
)
