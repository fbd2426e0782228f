package entity

// AddressComponent is one structured component of a provider place, tagged
// with the provider's component types (street_number, route, locality, ...).
type AddressComponent struct {
	LongText  string   `json:"long_text"`
	ShortText string   `json:"short_text,omitempty"`
	Types     []string `json:"types"`
}

// HasType reports whether the component carries the given type tag.
func (c AddressComponent) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}

	return false
}

// Place is a provider place result with structured address components.
// It is the normalized shape every geocoding tier converts into, so the
// parser only ever sees one format.
type Place struct {
	PlaceID          string             `json:"place_id,omitempty"`
	DisplayName      string             `json:"display_name,omitempty"`
	FormattedAddress string             `json:"formatted_address"`
	Location         *Coordinates       `json:"location,omitempty"`
	Components       []AddressComponent `json:"address_components,omitempty"`
	Types            []string           `json:"types,omitempty"`
}

// Component returns the long text of the first component carrying the given
// type tag, or the empty string.
func (p *Place) Component(t string) string {
	for _, c := range p.Components {
		if c.HasType(t) {
			return c.LongText
		}
	}

	return ""
}

// Suggestion is a provider-returned candidate place matching a partial
// query. Source records which tier produced it (provider, opencage, static,
// passthrough) for logging and debugging.
type Suggestion struct {
	PlaceID       string       `json:"place_id"`
	Text          string       `json:"description"`
	MainText      string       `json:"main_text"`
	SecondaryText string       `json:"secondary_text,omitempty"`
	Location      *Coordinates `json:"location,omitempty"`
	Source        string       `json:"source,omitempty"`
}
