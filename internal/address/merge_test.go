package address

import (
	"testing"

	"laundrify/internal/domain/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestMerge_FillsEmptyFieldsOnly(t *testing.T) {
	parsed := &entity.ParsedAddress{
		Street:     "MG Road",
		Area:       "Sector 15",
		PostalCode: "122001",
	}
	current := &entity.ParsedAddress{
		Street: "My Custom Street",
		Area:   "  ",
	}

	merged := Merge(parsed, current, DefaultMergeOptions)
	assert.Equal(t, "My Custom Street", merged.Street)
	assert.Equal(t, "Sector 15", merged.Area)
	assert.Equal(t, "122001", merged.PostalCode)
}

func TestMerge_OverrideReplacesUserInput(t *testing.T) {
	parsed := &entity.ParsedAddress{Street: "MG Road"}
	current := &entity.ParsedAddress{Street: "Old Street"}

	merged := Merge(parsed, current, MergeOptions{PreserveUserInput: false, OverrideEmpty: true})
	assert.Equal(t, "MG Road", merged.Street)
}

func TestMerge_EmptyParsedValueNeverClobbers(t *testing.T) {
	parsed := &entity.ParsedAddress{}
	current := &entity.ParsedAddress{Street: "Old Street", Area: "Koramangala"}

	merged := Merge(parsed, current, MergeOptions{PreserveUserInput: false, OverrideEmpty: true})
	assert.Equal(t, "Old Street", merged.Street)
	assert.Equal(t, "Koramangala", merged.Area)
}

func TestMerge_NilInputs(t *testing.T) {
	merged := Merge(nil, nil, DefaultMergeOptions)
	assert.NotNil(t, merged)
	assert.True(t, merged.IsZero())
}

func TestMerge_CoordinatesFilledWhenAbsent(t *testing.T) {
	parsed := &entity.ParsedAddress{Coordinates: &entity.Coordinates{Lat: 28.6, Lng: 77.2}}
	current := &entity.ParsedAddress{}

	merged := Merge(parsed, current, DefaultMergeOptions)
	assert.NotNil(t, merged.Coordinates)
	assert.InDelta(t, 28.6, merged.Coordinates.Lat, 1e-9)

	// The parsed coordinates are copied, not aliased.
	parsed.Coordinates.Lat = 0
	assert.InDelta(t, 28.6, merged.Coordinates.Lat, 1e-9)
}

func genParsedAddress() gopter.Gen {
	field := gen.OneConstOf("", " ", "MG Road", "Sector 15", "Gurugram", "122001", "A-45")

	return gopter.CombineGens(field, field, field, field).Map(func(values []interface{}) *entity.ParsedAddress {
		return &entity.ParsedAddress{
			HouseNumber: values[0].(string),
			Street:      values[1].(string),
			Area:        values[2].(string),
			PostalCode:  values[3].(string),
		}
	})
}

func TestMerge_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("merge is idempotent for fixed inputs", prop.ForAll(
		func(parsed, current *entity.ParsedAddress) bool {
			once := Merge(parsed, current, DefaultMergeOptions)
			twice := Merge(parsed, once, DefaultMergeOptions)

			return *once == *twice
		},
		genParsedAddress(),
		genParsedAddress(),
	))

	properties.Property("non-empty current fields survive preserve mode", prop.ForAll(
		func(parsed, current *entity.ParsedAddress) bool {
			merged := Merge(parsed, current, DefaultMergeOptions)
			mergedFields := merged.Fields()
			for name, value := range current.Fields() {
				if *value != "" && *value != " " && *mergedFields[name] != *value {
					return false
				}
			}

			return true
		},
		genParsedAddress(),
		genParsedAddress(),
	))

	properties.TestingRun(t)
}
