package address

import (
	"testing"

	"laundrify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFullAddress_JoinsNonEmptyParts(t *testing.T) {
	record := &entity.AddressRecord{
		HouseNumber: "A-45",
		Street:      "MG Road",
		Area:        "Sector 15",
		City:        "Gurugram",
		State:       "Haryana",
		PostalCode:  "122001",
	}

	assert.Equal(t, "A-45, MG Road, Sector 15, Gurugram, Haryana, 122001", FullAddress(record))
}

func TestFullAddress_StableAcrossRederivation(t *testing.T) {
	record := &entity.AddressRecord{
		Street:     "MG Road",
		Area:       "Connaught Place",
		PostalCode: "110001",
	}

	first := FullAddress(record)
	record.FullAddress = first
	assert.Equal(t, first, FullAddress(record))
}

func TestFullAddress_CityCollapsedIntoArea(t *testing.T) {
	record := &entity.AddressRecord{
		Street:     "Park Street",
		Area:       "Kolkata",
		City:       "Kolkata",
		PostalCode: "700016",
	}

	assert.Equal(t, "Park Street, Kolkata, 700016", FullAddress(record))
}

func TestDisplayAddress_LandmarkHint(t *testing.T) {
	addr := &entity.ParsedAddress{
		HouseNumber: "12",
		Street:      "Park Street",
		Landmark:    "City Mall",
		Area:        "Kolkata",
		PostalCode:  "700016",
	}

	assert.Equal(t, "12, Park Street, Near City Mall, Kolkata, 700016", DisplayAddress(addr))
}
