// Package position provides device position sources. The server deployment
// has no GPS of its own, so the default source reports the configured
// city-level location with a coarse accuracy radius.
package position

import (
	"context"
	"log/slog"

	"laundrify/config"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"

	"go.uber.org/fx"
)

// cityAccuracyMeters marks a fix as city-level, never street-level. The
// detection loop will still try its high-accuracy attempts and then settle
// for this.
const cityAccuracyMeters = 5000

type staticSource struct {
	coords entity.Coordinates
}

// Params holds dependencies for the position source, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates the configured static position source.
func NewSource(params Params) service.PositionSource {
	loc := params.Config.Location

	return &staticSource{
		coords: entity.Coordinates{Lat: loc.FallbackLat, Lng: loc.FallbackLng},
	}
}

func (s *staticSource) Position(_ context.Context, _ bool) (*entity.GeoFix, error) {
	return &entity.GeoFix{
		Coordinates: s.coords,
		Accuracy:    cityAccuracyMeters,
	}, nil
}

// Module provides the position source for Fx.
var Module = fx.Options(
	fx.Provide(NewSource),
)
