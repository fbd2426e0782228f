package address

import (
	"testing"

	"laundrify/internal/domain/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlace_ComponentPriority(t *testing.T) {
	place := &entity.Place{
		FormattedAddress: "45, MG Road, Sector 15, Gurugram, Haryana 122001, India",
		Location:         &entity.Coordinates{Lat: 28.4595, Lng: 77.0266},
		Components: []entity.AddressComponent{
			{LongText: "45", Types: []string{"street_number"}},
			{LongText: "MG Road", Types: []string{"route"}},
			{LongText: "Sector 15", Types: []string{"sublocality_level_1", "sublocality", "political"}},
			{LongText: "Gurugram", Types: []string{"locality", "political"}},
			{LongText: "Haryana", Types: []string{"administrative_area_level_1", "political"}},
			{LongText: "122001", Types: []string{"postal_code"}},
			{LongText: "India", Types: []string{"country", "political"}},
		},
	}

	parsed := ParsePlace(place)
	assert.Equal(t, "45", parsed.HouseNumber)
	assert.Equal(t, "MG Road", parsed.Street)
	assert.Equal(t, "Sector 15", parsed.Area)
	assert.Equal(t, "Gurugram", parsed.City)
	assert.Equal(t, "Haryana", parsed.State)
	assert.Equal(t, "122001", parsed.PostalCode)
	assert.Equal(t, "India", parsed.Country)
	require.NotNil(t, parsed.Coordinates)
	assert.InDelta(t, 28.4595, parsed.Coordinates.Lat, 1e-9)
}

func TestParsePlace_SublocalityFirstNonEmptyWins(t *testing.T) {
	place := &entity.Place{
		Components: []entity.AddressComponent{
			{LongText: "Koramangala 5th Block", Types: []string{"sublocality_level_1"}},
			{LongText: "Koramangala", Types: []string{"sublocality_level_2"}},
			{LongText: "Bengaluru", Types: []string{"locality"}},
		},
	}

	parsed := ParsePlace(place)
	assert.Equal(t, "Koramangala 5th Block", parsed.Area)
	assert.Equal(t, "Bengaluru", parsed.City)
}

func TestParsePlace_AreaDefaultsToCity(t *testing.T) {
	place := &entity.Place{
		Components: []entity.AddressComponent{
			{LongText: "Mumbai", Types: []string{"locality"}},
			{LongText: "Maharashtra", Types: []string{"administrative_area_level_1"}},
		},
	}

	parsed := ParsePlace(place)
	assert.Equal(t, "Mumbai", parsed.Area)
	assert.Equal(t, "Mumbai", parsed.City)
}

func TestParsePlace_NoComponentsFallsBackToString(t *testing.T) {
	place := &entity.Place{
		FormattedAddress: "A-45, MG Road, Sector 15, Gurgaon, 122001, India",
		Location:         &entity.Coordinates{Lat: 28.4, Lng: 77.0},
	}

	parsed := ParsePlace(place)
	assert.Equal(t, "A-45", parsed.HouseNumber)
	assert.Equal(t, "MG Road", parsed.Street)
	require.NotNil(t, parsed.Coordinates)
	assert.InDelta(t, 28.4, parsed.Coordinates.Lat, 1e-9)
}

func TestParseString_FullFallback(t *testing.T) {
	parsed := ParseString("A-45, MG Road, Sector 15, Gurgaon, 122001, India")

	assert.Equal(t, "A-45", parsed.HouseNumber)
	assert.Equal(t, "MG Road", parsed.Street)
	assert.Equal(t, "122001", parsed.PostalCode)
	assert.Equal(t, "Sector 15", parsed.Area)
	assert.Equal(t, "Gurgaon", parsed.City)
	assert.NotEqual(t, "India", parsed.Area)
	assert.NotEqual(t, "India", parsed.City)
	assert.NotEqual(t, "India", parsed.State)
}

func TestParseString_HousePatterns(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		houseNumber string
		street      string
	}{
		{"numeric prefix", "123A Main Street, Indiranagar, Bengaluru", "123A", "Main Street"},
		{"letter dash number", "B-12 Nehru Marg, Jaipur", "B-12", "Nehru Marg"},
		{"slash plot", "123/45 Station Road, Pune", "123/45", "Station Road"},
		{"keyword form", "House No 12, Green Park, Delhi", "12", "Green Park"},
		{"numeric before road word", "7 Park Lane, Kolkata", "7", "Park Lane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseString(tt.input)
			assert.Equal(t, tt.houseNumber, parsed.HouseNumber)
			if tt.street != "" {
				assert.Equal(t, tt.street, parsed.Street)
			}
		})
	}
}

func TestParseString_NoHouseNumberUsesFirstPartAsStreet(t *testing.T) {
	parsed := ParseString("MG Road, Koramangala, Bengaluru")
	assert.Equal(t, "MG Road", parsed.Street)
	assert.Equal(t, "Koramangala", parsed.Area)
	assert.Equal(t, "Bengaluru", parsed.City)
}

func TestParseString_SingleSegment(t *testing.T) {
	parsed := ParseString("Koramangala")
	assert.Equal(t, "Koramangala", parsed.Area)
}

func TestParseString_Empty(t *testing.T) {
	parsed := ParseString("")
	assert.True(t, parsed.IsZero())
}

func TestParseString_NeverPanics(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("parse is total over arbitrary strings", prop.ForAll(
		func(input string) bool {
			parsed := ParseString(input)

			return parsed != nil
		},
		gen.AnyString(),
	))

	properties.Property("pincode, when present, is six digits", prop.ForAll(
		func(input string) bool {
			parsed := ParseString(input)

			return parsed.PostalCode == "" || pincodeOnlyRe.MatchString(parsed.PostalCode)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
