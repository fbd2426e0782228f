// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// AddressType classifies a saved address for display grouping.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// AddressStatus is the lifecycle state of a saved address. The backend keeps
// soft-deleted records around with StatusDeleted; the local cache removes
// them physically.
type AddressStatus string

const (
	StatusActive  AddressStatus = "active"
	StatusDeleted AddressStatus = "deleted"
)

// AddressRecord is the durable, user-owned address entity.
//
// Identity is carried by either the locally generated ID or the backend
// BackendID; the backend one wins whenever both are present. UpdatedAt is a
// logical last-write-wins timestamp: a stale list response that completes
// after a newer save must not clobber the newer record.
type AddressRecord struct {
	ID           string        `json:"id"`
	BackendID    string        `json:"_id,omitempty"`
	HouseNumber  string        `json:"house_number,omitempty"`
	Street       string        `json:"street,omitempty"`
	Landmark     string        `json:"landmark,omitempty"`
	Area         string        `json:"area,omitempty"`
	City         string        `json:"city,omitempty"` // alias of Area kept for older records
	State        string        `json:"state,omitempty"`
	PostalCode   string        `json:"pincode,omitempty"`
	FullAddress  string        `json:"full_address"`
	Coordinates  *Coordinates  `json:"coordinates,omitempty"`
	Label        string        `json:"label,omitempty"`
	Type         AddressType   `json:"type"`
	ContactName  string        `json:"contact_name,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Status       AddressStatus `json:"status"`

	// Synced is true once the backend has acknowledged this record. Records
	// that only ever lived in the local store are pushed upstream
	// opportunistically on the next successful sync.
	Synced bool `json:"synced,omitempty"`
}

// Key returns the identity key of the record. The backend identifier is
// authoritative when both are set.
func (r *AddressRecord) Key() string {
	if r.BackendID != "" {
		return r.BackendID
	}

	return r.ID
}

// EffectiveArea returns the canonical area, falling back to the legacy City
// alias for records written before the two fields were collapsed.
func (r *AddressRecord) EffectiveArea() string {
	if r.Area != "" {
		return r.Area
	}

	return r.City
}

// NewerThan reports whether this record should win a last-write-wins merge
// against other.
func (r *AddressRecord) NewerThan(other *AddressRecord) bool {
	return r.UpdatedAt.After(other.UpdatedAt)
}
