package geocode

import (
	"context"
	"fmt"
	"strings"

	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// City is one entry of the curated regional table used when every live
// provider is down.
type City struct {
	Name  string
	State string
	Lat   float64
	Lng   float64
}

// Cities is the curated major-city table, ordered by usage.
var Cities = []City{
	{"New Delhi", "Delhi", 28.6139, 77.2090},
	{"Gurgaon", "Haryana", 28.4595, 77.0266},
	{"Noida", "Uttar Pradesh", 28.5355, 77.3910},
	{"Mumbai", "Maharashtra", 19.0760, 72.8777},
	{"Bangalore", "Karnataka", 12.9716, 77.5946},
	{"Chennai", "Tamil Nadu", 13.0827, 80.2707},
	{"Hyderabad", "Telangana", 17.3850, 78.4867},
	{"Pune", "Maharashtra", 18.5204, 73.8567},
	{"Kolkata", "West Bengal", 22.5726, 88.3639},
	{"Ahmedabad", "Gujarat", 23.0225, 72.5714},
	{"Jaipur", "Rajasthan", 26.9124, 75.7873},
	{"Chandigarh", "Punjab", 30.7333, 76.7794},
}

// NearestCity returns the curated city closest to coords and the distance to
// it in meters.
func NearestCity(coords entity.Coordinates) (City, float64) {
	point := coords.Point()
	best := Cities[0]
	bestDistance := geo.Distance(point, orb.Point{best.Lng, best.Lat})
	for _, city := range Cities[1:] {
		distance := geo.Distance(point, orb.Point{city.Lng, city.Lat})
		if distance < bestDistance {
			best = city
			bestDistance = distance
		}
	}

	return best, bestDistance
}

// staticSuggester matches the query against the curated city table. It never
// performs network calls, so it can always serve as a degraded tier.
type staticSuggester struct{}

// NewStaticSuggester creates the curated-table suggestion tier.
func NewStaticSuggester() service.SuggestProvider {
	return &staticSuggester{}
}

func (s *staticSuggester) Name() string {
	return "local"
}

func (s *staticSuggester) Suggest(_ context.Context, query string, _ string) ([]entity.Suggestion, error) {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return nil, nil
	}

	suggestions := make([]entity.Suggestion, 0)
	for _, city := range Cities {
		cityLower := strings.ToLower(city.Name)
		if !strings.Contains(cityLower, lowered) && !strings.Contains(lowered, cityLower) {
			continue
		}
		suggestions = append(suggestions, entity.Suggestion{
			PlaceID:       fmt.Sprintf("local_%s_%s", query, cityLower),
			Text:          fmt.Sprintf("%s, %s, %s, India", query, city.Name, city.State),
			MainText:      query,
			SecondaryText: fmt.Sprintf("%s, %s, India", city.Name, city.State),
			Location:      &entity.Coordinates{Lat: city.Lat, Lng: city.Lng},
			Source:        s.Name(),
		})
	}

	return suggestions, nil
}

func (s *staticSuggester) ResolveSuggestion(_ context.Context, placeID string, _ string) (*entity.Place, error) {
	rest, ok := strings.CutPrefix(placeID, "local_")
	if !ok {
		return nil, errors.Errorf("not a local place id: %s", placeID)
	}

	for _, city := range Cities {
		cityLower := strings.ToLower(city.Name)
		query, found := strings.CutSuffix(rest, "_"+cityLower)
		if !found {
			continue
		}

		return &entity.Place{
			PlaceID:          placeID,
			DisplayName:      query,
			FormattedAddress: fmt.Sprintf("%s, %s, %s, India", query, city.Name, city.State),
			Location:         &entity.Coordinates{Lat: city.Lat, Lng: city.Lng},
			Components: []entity.AddressComponent{
				{LongText: city.Name, ShortText: city.Name, Types: []string{"locality"}},
				{LongText: city.State, ShortText: city.State, Types: []string{"administrative_area_level_1"}},
				{LongText: "India", ShortText: "IN", Types: []string{"country"}},
			},
		}, nil
	}

	return nil, errors.Errorf("unknown local place id: %s", placeID)
}

// passthroughSuggester is the terminal tier: it echoes the query back as a
// single "<query>, India" suggestion so the caller always has something to
// show.
type passthroughSuggester struct{}

// NewPassthroughSuggester creates the terminal suggestion tier.
func NewPassthroughSuggester() service.SuggestProvider {
	return &passthroughSuggester{}
}

func (s *passthroughSuggester) Name() string {
	return "fallback"
}

func (s *passthroughSuggester) Suggest(_ context.Context, query string, _ string) ([]entity.Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	return []entity.Suggestion{{
		PlaceID:       "fallback_" + query,
		Text:          query + ", India",
		MainText:      query,
		SecondaryText: "India",
		Source:        s.Name(),
	}}, nil
}

func (s *passthroughSuggester) ResolveSuggestion(_ context.Context, placeID string, _ string) (*entity.Place, error) {
	query, ok := strings.CutPrefix(placeID, "fallback_")
	if !ok {
		return nil, errors.Errorf("not a fallback place id: %s", placeID)
	}

	// No real geometry is known; center on the regional default.
	return &entity.Place{
		PlaceID:          placeID,
		DisplayName:      query,
		FormattedAddress: query + ", India",
		Location:         &entity.Coordinates{Lat: Cities[0].Lat, Lng: Cities[0].Lng},
	}, nil
}
