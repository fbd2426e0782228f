package address

import (
	"strings"

	"laundrify/internal/domain/entity"
)

// FullAddress derives the stable comma-joined form of a record's component
// fields. The join order is significant and must not change: stored
// full_address values are compared against re-derived ones.
func FullAddress(record *entity.AddressRecord) string {
	parts := make([]string, 0, 6)
	appendPart(&parts, record.HouseNumber)
	appendPart(&parts, record.Street)
	appendPart(&parts, record.Area)
	if record.City != "" && record.City != record.Area {
		appendPart(&parts, record.City)
	}
	appendPart(&parts, record.State)
	appendPart(&parts, record.PostalCode)

	return strings.Join(parts, ", ")
}

// DisplayAddress renders the user-facing address line, interleaving the
// landmark as a "Near ..." hint.
func DisplayAddress(addr *entity.ParsedAddress) string {
	parts := make([]string, 0, 6)
	appendPart(&parts, addr.HouseNumber)
	appendPart(&parts, addr.Street)
	if addr.Landmark != "" {
		parts = append(parts, "Near "+addr.Landmark)
	}
	appendPart(&parts, addr.Area)
	if addr.City != "" && addr.City != addr.Area {
		appendPart(&parts, addr.City)
	}
	appendPart(&parts, addr.PostalCode)

	return strings.Join(parts, ", ")
}

func appendPart(parts *[]string, value string) {
	if strings.TrimSpace(value) != "" {
		*parts = append(*parts, value)
	}
}
