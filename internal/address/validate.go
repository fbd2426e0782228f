package address

import "laundrify/internal/domain/entity"

// ValidationResult reports structural completeness of an address. It is
// purely advisory text for the form; nothing here blocks by itself.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	MissingFields []string `json:"missing_fields"`
	Suggestions   []string `json:"suggestions"`
}

// fieldSuggestions maps a missing required field to its remediation hint.
var fieldSuggestions = map[string]string{
	"street":  "Add street name or road details",
	"area":    "Specify area, locality, or neighborhood",
	"pincode": "Enter 6-digit pincode",
}

// requiredFields in display order.
var requiredFields = []string{"street", "area", "pincode"}

// Validate checks that the required fields are populated and the pincode is
// well formed. An address is valid only when street, area and pincode are
// all non-blank and the pincode is exactly 6 digits.
func Validate(addr *entity.ParsedAddress) ValidationResult {
	result := ValidationResult{
		MissingFields: []string{},
		Suggestions:   []string{},
	}
	if addr == nil {
		addr = &entity.ParsedAddress{}
	}

	fields := addr.Fields()
	for _, name := range requiredFields {
		if isBlank(*fields[name]) {
			result.MissingFields = append(result.MissingFields, name)
			result.Suggestions = append(result.Suggestions, fieldSuggestions[name])
		}
	}

	pincodeOK := true
	if addr.PostalCode != "" && !pincodeOnlyRe.MatchString(addr.PostalCode) {
		pincodeOK = false
		result.Suggestions = append(result.Suggestions, "Pincode should be 6 digits")
	}

	result.IsValid = len(result.MissingFields) == 0 && pincodeOK

	return result
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}

	return true
}
