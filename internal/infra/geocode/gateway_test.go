package geocode

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"laundrify/internal/domain/entity"
	domainerrors "laundrify/internal/domain/errors"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggester struct {
	name        string
	suggestions []entity.Suggestion
	err         error
	calls       int
}

func (s *stubSuggester) Name() string { return s.name }

func (s *stubSuggester) Suggest(_ context.Context, _ string, _ string) ([]entity.Suggestion, error) {
	s.calls++

	return s.suggestions, s.err
}

func (s *stubSuggester) ResolveSuggestion(_ context.Context, placeID string, _ string) (*entity.Place, error) {
	if s.err != nil {
		return nil, s.err
	}

	return &entity.Place{PlaceID: placeID, FormattedAddress: s.name}, nil
}

type stubProvider struct {
	name   string
	places map[string]*entity.Place
	err    error
}

func coordKey(c entity.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lng)
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) ReverseGeocode(_ context.Context, coords entity.Coordinates) (*entity.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	if place, ok := s.places[coordKey(coords)]; ok {
		return place, nil
	}

	return nil, errors.New("no result")
}

func (s *stubProvider) ForwardGeocode(_ context.Context, _ string) (*entity.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, place := range s.places {
		return place, nil
	}

	return nil, errors.New("no result")
}

func newTestGateway(providers []service.GeocodingProvider, suggesters []service.SuggestProvider) *Gateway {
	return &Gateway{
		providers:      providers,
		suggesters:     suggesters,
		maxSuggestions: 8,
		probeDelta:     0.0001,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGateway_Suggest_SkipsFailedTiers(t *testing.T) {
	primary := &stubSuggester{name: "google", err: errors.New("network down")}
	secondary := &stubSuggester{name: "nominatim", suggestions: []entity.Suggestion{
		{PlaceID: "nominatim_1", Text: "Koramangala, Bengaluru, India", Source: "nominatim"},
	}}

	gateway := newTestGateway(nil, []service.SuggestProvider{primary, secondary})

	suggestions := gateway.Suggest(context.Background(), "Koramangala", "")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "nominatim_1", suggestions[0].PlaceID)
}

func TestGateway_Suggest_ProviderOutageStillYieldsResults(t *testing.T) {
	// Every live tier errors; the static table has no match for the query,
	// so the passthrough tier must answer.
	gateway := newTestGateway(nil, []service.SuggestProvider{
		&stubSuggester{name: "google", err: errors.New("network down")},
		&stubSuggester{name: "nominatim", err: errors.New("network down")},
		NewStaticSuggester(),
		NewPassthroughSuggester(),
	})

	suggestions := gateway.Suggest(context.Background(), "Koramangala", "")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Koramangala, India", suggestions[0].Text)
	assert.Equal(t, "fallback", suggestions[0].Source)
}

func TestGateway_Suggest_StaticCityMatch(t *testing.T) {
	gateway := newTestGateway(nil, []service.SuggestProvider{
		NewStaticSuggester(),
		NewPassthroughSuggester(),
	})

	suggestions := gateway.Suggest(context.Background(), "Mumbai", "")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "local", suggestions[0].Source)
	require.NotNil(t, suggestions[0].Location)
	assert.InDelta(t, 19.0760, suggestions[0].Location.Lat, 1e-6)
}

func TestGateway_Suggest_CapsResultCount(t *testing.T) {
	many := make([]entity.Suggestion, 20)
	for i := range many {
		many[i] = entity.Suggestion{PlaceID: fmt.Sprintf("p%d", i)}
	}
	gateway := newTestGateway(nil, []service.SuggestProvider{&stubSuggester{name: "google", suggestions: many}})

	suggestions := gateway.Suggest(context.Background(), "MG Road", "")
	assert.Len(t, suggestions, 8)
}

func TestGateway_ResolveSuggestion_UnknownID(t *testing.T) {
	gateway := newTestGateway(nil, []service.SuggestProvider{
		&stubSuggester{name: "google", err: errors.New("not mine")},
	})

	_, err := gateway.ResolveSuggestion(context.Background(), "mystery", "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPlaceNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestGateway_ReverseGeocode_ProbesForStreetDetail(t *testing.T) {
	origin := entity.Coordinates{Lat: 28.45950, Lng: 77.02660}
	north := origin.Offset(0.0001, 0)

	vague := &entity.Place{
		FormattedAddress: "Sector 15, Gurugram, Haryana, India",
		Components: []entity.AddressComponent{
			{LongText: "Sector 15", Types: []string{"sublocality_level_1"}},
			{LongText: "Gurugram", Types: []string{"locality"}},
		},
	}
	detailed := &entity.Place{
		FormattedAddress: "45, MG Road, Sector 15, Gurugram, Haryana, India",
		Components: []entity.AddressComponent{
			{LongText: "45", Types: []string{"street_number"}},
			{LongText: "MG Road", Types: []string{"route"}},
		},
	}

	provider := &stubProvider{name: "opencage", places: map[string]*entity.Place{
		coordKey(origin): vague,
		coordKey(north):  detailed,
	}}
	gateway := newTestGateway([]service.GeocodingProvider{provider}, nil)

	place, err := gateway.ReverseGeocode(context.Background(), origin)
	require.NoError(t, err)
	assert.Equal(t, detailed.FormattedAddress, place.FormattedAddress)
}

func TestGateway_ReverseGeocode_KeepsVagueResultWhenProbesFail(t *testing.T) {
	origin := entity.Coordinates{Lat: 28.45950, Lng: 77.02660}
	vague := &entity.Place{FormattedAddress: "Sector 15, Gurugram"}

	provider := &stubProvider{name: "opencage", places: map[string]*entity.Place{
		coordKey(origin): vague,
	}}
	gateway := newTestGateway([]service.GeocodingProvider{provider}, nil)

	place, err := gateway.ReverseGeocode(context.Background(), origin)
	require.NoError(t, err)
	assert.Equal(t, vague.FormattedAddress, place.FormattedAddress)
}

func TestGateway_ReverseGeocode_SkipsProbingWhenAlreadyDetailed(t *testing.T) {
	origin := entity.Coordinates{Lat: 12.97160, Lng: 77.59460}
	detailed := &entity.Place{
		FormattedAddress: "123 Residency Road, Bengaluru",
		Components: []entity.AddressComponent{
			{LongText: "123", Types: []string{"street_number"}},
			{LongText: "Residency Road", Types: []string{"route"}},
		},
	}

	provider := &stubProvider{name: "opencage", places: map[string]*entity.Place{
		coordKey(origin): detailed,
	}}
	gateway := newTestGateway([]service.GeocodingProvider{provider}, nil)

	place, err := gateway.ReverseGeocode(context.Background(), origin)
	require.NoError(t, err)
	assert.Equal(t, detailed.FormattedAddress, place.FormattedAddress)
}

func TestGateway_ReverseGeocode_AllTiersDownUsesCuratedFallback(t *testing.T) {
	gateway := newTestGateway([]service.GeocodingProvider{
		&stubProvider{name: "opencage", err: errors.New("down")},
		&stubProvider{name: "nominatim", err: errors.New("down")},
	}, nil)

	// A point in central Mumbai.
	place, err := gateway.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 19.07, Lng: 72.88})
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Contains(t, place.FormattedAddress, "Mumbai")
	assert.Equal(t, "Mumbai", place.Component("locality"))
}

func TestGateway_ForwardGeocode_Exhausted(t *testing.T) {
	gateway := newTestGateway([]service.GeocodingProvider{
		&stubProvider{name: "opencage", err: errors.New("down")},
	}, nil)

	_, err := gateway.ForwardGeocode(context.Background(), "MG Road, Gurugram")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrGeocodeExhausted.ErrorCode(), appErr.ErrorCode())
}

func TestNearestCity(t *testing.T) {
	city, distance := NearestCity(entity.Coordinates{Lat: 28.61, Lng: 77.20})
	assert.Equal(t, "New Delhi", city.Name)
	assert.Less(t, distance, 2000.0)
}

func TestHasStreetLevelDetails_PatternOnly(t *testing.T) {
	place := &entity.Place{FormattedAddress: "House No 12, Green Park, Delhi"}
	assert.True(t, hasStreetLevelDetails(place))

	vague := &entity.Place{FormattedAddress: "Green Park, Delhi"}
	assert.False(t, hasStreetLevelDetails(vague))
}
