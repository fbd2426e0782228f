package address

import (
	"testing"

	"laundrify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidate_CompleteAddress(t *testing.T) {
	result := Validate(&entity.ParsedAddress{
		Street:     "MG Road",
		Area:       "Connaught Place",
		PostalCode: "110001",
	})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.MissingFields)
}

func TestValidate_MissingStreet(t *testing.T) {
	result := Validate(&entity.ParsedAddress{
		Street:     "",
		Area:       "Koramangala",
		PostalCode: "560001",
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"street"}, result.MissingFields)
	assert.Contains(t, result.Suggestions, "Add street name or road details")
}

func TestValidate_AllMissing(t *testing.T) {
	result := Validate(&entity.ParsedAddress{})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"street", "area", "pincode"}, result.MissingFields)
	assert.Len(t, result.Suggestions, 3)
}

func TestValidate_WhitespaceCountsAsMissing(t *testing.T) {
	result := Validate(&entity.ParsedAddress{
		Street:     "  ",
		Area:       "Koramangala",
		PostalCode: "560001",
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"street"}, result.MissingFields)
}

func TestValidate_MalformedPincode(t *testing.T) {
	result := Validate(&entity.ParsedAddress{
		Street:     "MG Road",
		Area:       "Connaught Place",
		PostalCode: "1100",
	})

	assert.False(t, result.IsValid)
	assert.Empty(t, result.MissingFields)
	assert.Contains(t, result.Suggestions, "Pincode should be 6 digits")
}

func TestValidate_Nil(t *testing.T) {
	result := Validate(nil)

	assert.False(t, result.IsValid)
	assert.Len(t, result.MissingFields, 3)
}
