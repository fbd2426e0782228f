package address

import (
	"strings"

	"laundrify/internal/domain/entity"
)

// MergeOptions controls the autofill policy.
type MergeOptions struct {
	// PreserveUserInput keeps any non-blank current value untouched.
	PreserveUserInput bool
	// OverrideEmpty, with PreserveUserInput false, lets non-empty parsed
	// values overwrite current values.
	OverrideEmpty bool
}

// DefaultMergeOptions is the autofill policy used by the smart form.
var DefaultMergeOptions = MergeOptions{PreserveUserInput: true, OverrideEmpty: true}

// Merge combines a freshly parsed address into the user's current form state,
// field by field. A parsed value only lands when the current field is absent
// or pure whitespace, unless PreserveUserInput is off and OverrideEmpty is
// on. An empty parsed value never clobbers anything.
func Merge(parsed *entity.ParsedAddress, current *entity.ParsedAddress, opts MergeOptions) *entity.ParsedAddress {
	result := &entity.ParsedAddress{}
	if current != nil {
		*result = *current
	}
	if parsed == nil {
		return result
	}

	resultFields := result.Fields()
	for name, newValue := range parsed.Fields() {
		if *newValue == "" {
			continue
		}
		target := resultFields[name]
		switch {
		case *target == "":
			*target = *newValue
		case !opts.PreserveUserInput && opts.OverrideEmpty:
			*target = *newValue
		case opts.PreserveUserInput && strings.TrimSpace(*target) == "":
			*target = *newValue
		}
	}

	if parsed.Coordinates != nil && (result.Coordinates == nil || !opts.PreserveUserInput) {
		coords := *parsed.Coordinates
		result.Coordinates = &coords
	}
	if parsed.FormattedAddress != "" && result.FormattedAddress == "" {
		result.FormattedAddress = parsed.FormattedAddress
	}

	return result
}
