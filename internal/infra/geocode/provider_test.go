package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundrify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openCagePayload = `{
  "results": [
    {
      "formatted": "45, MG Road, Sector 15, Gurugram 122001, Haryana, India",
      "geometry": {"lat": 28.4595, "lng": 77.0266},
      "components": {
        "house_number": "45",
        "road": "MG Road",
        "suburb": "Sector 15",
        "city": "Gurugram",
        "state": "Haryana",
        "state_code": "HR",
        "postcode": "122001",
        "country": "India",
        "country_code": "in"
      }
    }
  ]
}`

func TestOpenCageProvider_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/v1/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(openCagePayload))
	}))
	defer server.Close()

	provider := NewOpenCageProvider("test-key", server.URL, time.Second)
	place, err := provider.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 28.4595, Lng: 77.0266})
	require.NoError(t, err)

	assert.Equal(t, "45", place.Component("street_number"))
	assert.Equal(t, "MG Road", place.Component("route"))
	assert.Equal(t, "Sector 15", place.Component("sublocality_level_1"))
	assert.Equal(t, "Gurugram", place.Component("locality"))
	assert.Equal(t, "122001", place.Component("postal_code"))
	require.NotNil(t, place.Location)
	assert.InDelta(t, 28.4595, place.Location.Lat, 1e-9)
}

func TestOpenCageProvider_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	provider := NewOpenCageProvider("test-key", server.URL, time.Second)
	_, err := provider.ForwardGeocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
}

const nominatimSearchPayload = `[
  {
    "osm_id": 123456,
    "name": "Koramangala",
    "display_name": "Koramangala, Bengaluru, Karnataka, 560034, India",
    "lat": "12.9352",
    "lon": "77.6245",
    "address": {"suburb": "Koramangala", "city": "Bengaluru", "state": "Karnataka", "postcode": "560034", "country": "India"}
  }
]`

func TestNominatimProvider_Suggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), ", India")
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(nominatimSearchPayload))
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, time.Second)
	suggestions, err := provider.Suggest(context.Background(), "Koramangala", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, "nominatim_123456", suggestions[0].PlaceID)
	assert.Equal(t, "Koramangala", suggestions[0].MainText)
	assert.Equal(t, "Bengaluru, Karnataka, 560034, India", suggestions[0].SecondaryText)
	require.NotNil(t, suggestions[0].Location)
	assert.InDelta(t, 12.9352, suggestions[0].Location.Lat, 1e-9)
}

func TestNominatimProvider_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Write([]byte(`{
			"osm_id": 99,
			"display_name": "12, Park Street, Kolkata, West Bengal, 700016, India",
			"lat": "22.5726", "lon": "88.3639",
			"address": {"house_number": "12", "road": "Park Street", "city": "Kolkata", "state": "West Bengal", "postcode": "700016", "country": "India"}
		}`))
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, time.Second)
	place, err := provider.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 22.5726, Lng: 88.3639})
	require.NoError(t, err)

	assert.Equal(t, "12", place.Component("street_number"))
	assert.Equal(t, "Park Street", place.Component("route"))
	assert.Equal(t, "Kolkata", place.Component("locality"))
}

func TestGoogleProvider_Suggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/places:autocomplete", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		w.Write([]byte(`{
			"suggestions": [
				{"placePrediction": {
					"placeId": "ChIJabc",
					"text": {"text": "MG Road, Gurugram, Haryana, India"},
					"structuredFormat": {
						"mainText": {"text": "MG Road"},
						"secondaryText": {"text": "Gurugram, Haryana, India"}
					}
				}}
			]
		}`))
	}))
	defer server.Close()

	provider := NewGoogleProvider("test-key", server.URL, nil, time.Second)
	suggestions, err := provider.Suggest(context.Background(), "MG Road", "session-1")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, "ChIJabc", suggestions[0].PlaceID)
	assert.Equal(t, "MG Road", suggestions[0].MainText)
	assert.Equal(t, "google", suggestions[0].Source)
}

func TestStaticSuggester_ResolveRoundTrip(t *testing.T) {
	suggester := NewStaticSuggester()

	suggestions, err := suggester.Suggest(context.Background(), "Laundry pickup Mumbai", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	place, err := suggester.ResolveSuggestion(context.Background(), suggestions[0].PlaceID, "")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", place.Component("locality"))
	require.NotNil(t, place.Location)
	assert.InDelta(t, 19.0760, place.Location.Lat, 1e-6)
}
