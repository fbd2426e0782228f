package entity

import "strings"

// ParsedAddress is the ephemeral structured output of one address resolution
// attempt. Every field is independently optional; absent data stays absent,
// it is never fabricated. Values are all primitives so the record can round
// trip through JSON storage untouched.
type ParsedAddress struct {
	HouseNumber      string       `json:"house_number,omitempty"`
	Street           string       `json:"street,omitempty"`
	Area             string       `json:"area,omitempty"`
	Landmark         string       `json:"landmark,omitempty"`
	City             string       `json:"city,omitempty"`
	State            string       `json:"state,omitempty"`
	PostalCode       string       `json:"pincode,omitempty"`
	Country          string       `json:"country,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
	FormattedAddress string       `json:"formatted_address,omitempty"`
}

// IsZero reports whether no field carries a value.
func (p ParsedAddress) IsZero() bool {
	return p.HouseNumber == "" && p.Street == "" && p.Area == "" &&
		p.Landmark == "" && p.City == "" && p.State == "" &&
		p.PostalCode == "" && p.Country == "" && p.Coordinates == nil &&
		p.FormattedAddress == ""
}

// Fields returns the string fields keyed by their canonical names. Used by
// the merger and validator so field policy stays in one place.
func (p *ParsedAddress) Fields() map[string]*string {
	return map[string]*string{
		"house_number": &p.HouseNumber,
		"street":       &p.Street,
		"area":         &p.Area,
		"landmark":     &p.Landmark,
		"city":         &p.City,
		"state":        &p.State,
		"pincode":      &p.PostalCode,
		"country":      &p.Country,
	}
}

// HasStreetLevelDetail reports whether the parse captured house-number or
// route level information.
func (p ParsedAddress) HasStreetLevelDetail() bool {
	return strings.TrimSpace(p.HouseNumber) != "" || strings.TrimSpace(p.Street) != ""
}
