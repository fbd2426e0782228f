// Package address implements the pure address pipeline: parsing provider
// places and free-form display strings into structured records, merging
// parsed data into user input, validating completeness and deriving stable
// display strings. Everything here is side-effect free.
package address

import (
	"regexp"
	"strings"

	"laundrify/internal/domain/entity"
)

var (
	pincodeRe     = regexp.MustCompile(`\b\d{6}\b`)
	pincodeOnlyRe = regexp.MustCompile(`^\d{6}$`)
)

// housePattern pairs a regex tried against the first comma segment of a
// free-form address with the capture group holding the house number.
type housePattern struct {
	re    *regexp.Regexp
	group int
}

// housePatterns are tried in order against the first segment; the first match
// wins and the unmatched remainder becomes the street.
var housePatterns = []housePattern{
	{regexp.MustCompile(`^(\d+[A-Z]?)\s+`), 1},                                      // "123A Main Street"
	{regexp.MustCompile(`^([A-Z]-?\d+)\s+`), 1},                                     // "A-123 Main Street"
	{regexp.MustCompile(`^(\d+/\d+)\s+`), 1},                                        // "123/45 Main Street"
	{regexp.MustCompile(`(?i)^(House|Plot|Flat|Door)\s*(No\.?)?\s*(\d+[A-Z]?)`), 3}, // "House No 123"
	{regexp.MustCompile(`(?i)^(\d+)\s+(Street|Road|Lane|Marg|Block)`), 1},           // "123 Main Street"
}

// houseTokenPatterns recognize a first segment that is nothing but a house
// number, e.g. "A-45, MG Road, ...".
var houseTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+[A-Z]?$`),
	regexp.MustCompile(`^[A-Z]-?\d+$`),
	regexp.MustCompile(`^\d+/\d+$`),
}

// ParsePlace maps a provider place into a ParsedAddress using a fixed
// component priority table. A place without structured components falls back
// to string parsing of its formatted address.
func ParsePlace(place *entity.Place) *entity.ParsedAddress {
	if place == nil {
		return &entity.ParsedAddress{}
	}

	if len(place.Components) == 0 {
		result := ParseString(place.FormattedAddress)
		attachLocation(result, place.Location)

		return result
	}

	result := &entity.ParsedAddress{FormattedAddress: place.FormattedAddress}
	attachLocation(result, place.Location)

	for _, component := range place.Components {
		value := component.LongText
		switch {
		case component.HasType("street_number"):
			result.HouseNumber = value
		case component.HasType("route"):
			result.Street = value
		case component.HasType("sublocality_level_1"), component.HasType("sublocality"):
			if result.Area == "" {
				result.Area = value
			}
		case component.HasType("locality"):
			result.City = value
		case component.HasType("administrative_area_level_1"):
			result.State = value
		case component.HasType("postal_code"):
			result.PostalCode = value
		case component.HasType("country"):
			result.Country = value
		case component.HasType("neighborhood"), component.HasType("sublocality_level_2"):
			// Lower-priority area tiers, used only when nothing better set it.
			if result.Area == "" {
				result.Area = value
			}
		}
	}

	// An address with a city but no sublocality tier still needs an area for
	// the form. Never the reverse: city is not defaulted from area.
	if result.Area == "" && result.City != "" {
		result.Area = result.City
	}

	return result
}

// ParseString parses a free-form display address when no structured
// components are available. Segments are split on commas and read
// positionally as street, area, city, state. It never fails; unrecognized
// input just yields fewer fields.
func ParseString(formatted string) *entity.ParsedAddress {
	result := &entity.ParsedAddress{FormattedAddress: formatted}

	parts := splitTrim(formatted)

	if m := pincodeRe.FindString(formatted); m != "" {
		result.PostalCode = m
	}

	consumedFirst := false
	if len(parts) > 0 {
		first := parts[0]
		for _, p := range housePatterns {
			m := p.re.FindStringSubmatch(first)
			if m == nil {
				continue
			}
			result.HouseNumber = m[p.group]
			if rest := strings.TrimSpace(p.re.ReplaceAllString(first, "")); rest != "" {
				result.Street = rest
			}
			consumedFirst = true

			break
		}
		if !consumedFirst {
			for _, re := range houseTokenPatterns {
				if re.MatchString(first) {
					result.HouseNumber = first
					consumedFirst = true

					break
				}
			}
		}
	}

	clean := make([]string, 0, len(parts))
	for i, part := range parts {
		switch {
		case i == 0 && consumedFirst:
		case len(part) < 2:
		case pincodeOnlyRe.MatchString(part):
		case strings.EqualFold(part, "india"):
		default:
			clean = append(clean, part)
		}
	}

	// Remaining segments read positionally: street, area, city, with the
	// trailing segment taken as state when enough remain.
	idx := 0
	if result.Street == "" && idx < len(clean) {
		result.Street = clean[idx]
		idx++
	}
	if idx < len(clean) {
		result.Area = clean[idx]
		idx++
	}
	if idx < len(clean) {
		result.City = clean[idx]
		idx++
	}
	if idx < len(clean) {
		result.State = clean[len(clean)-1]
	}

	// A lone token serves as both street and area.
	if result.Area == "" && result.City == "" && result.Street != "" && len(clean) <= 1 {
		result.Area = result.Street
	}

	return result
}

func attachLocation(parsed *entity.ParsedAddress, loc *entity.Coordinates) {
	if loc == nil {
		return
	}
	coords := *loc
	parsed.Coordinates = &coords
}

func splitTrim(s string) []string {
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return parts
}
