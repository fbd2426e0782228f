package entity

// ServiceAvailability is the read-only verdict for one serviceability check.
// It is produced per validation call and consumed immediately to gate the
// save/continue flow; it is never persisted.
type ServiceAvailability struct {
	IsAvailable bool   `json:"is_available"`
	MatchedZone string `json:"matched_zone,omitempty"`
	Message     string `json:"message,omitempty"`

	// Retryable marks a fail-closed verdict caused by checker errors rather
	// than an actual out-of-zone address. The UI offers a retry instead of a
	// hard "not available" message.
	Retryable bool `json:"retryable,omitempty"`
}
