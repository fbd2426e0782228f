package usecase

import (
	"context"

	"laundrify/internal/domain/entity"
)

// SaveAddressInput represents the input for saving an address
type SaveAddressInput struct {
	HouseNumber  string              `json:"house_number,omitempty"`
	Street       string              `json:"street"`
	Landmark     string              `json:"landmark,omitempty"`
	Area         string              `json:"area"`
	City         string              `json:"city,omitempty"`
	State        string              `json:"state,omitempty"`
	PostalCode   string              `json:"pincode"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	Label        string              `json:"label,omitempty"`
	Type         entity.AddressType  `json:"type,omitempty"`
	ContactName  string              `json:"contact_name,omitempty"`
	ContactPhone string              `json:"contact_phone,omitempty"`
}

// SaveAddressResult reports the save outcome. SyncedRemotely false with a
// successful save means the record is queued for the next sync.
type SaveAddressResult struct {
	Record         *entity.AddressRecord `json:"record"`
	SyncedRemotely bool                  `json:"synced_remotely"`
	Message        string                `json:"message"`
}

// AddressUsecase defines the interface for address persistence and
// synchronization use cases
type AddressUsecase interface {
	// SaveAddress validates, checks service availability, and dual-writes
	// the address to the backend and the local store.
	SaveAddress(ctx context.Context, ownerID string, input *SaveAddressInput) (*SaveAddressResult, error)

	// ListAddresses returns the owner's active addresses, preferring the
	// backend view and reconciling it into the local store.
	ListAddresses(ctx context.Context, ownerID string) ([]*entity.AddressRecord, error)

	// DeleteAddress soft-deletes remotely and hard-removes locally.
	DeleteAddress(ctx context.Context, ownerID string, id string) error

	// MigrateOwner moves address lists stored under legacy owner keys to
	// newOwnerID, merging near-duplicates, and removes the legacy keys.
	// With no explicit legacy IDs it scans for guest keys.
	MigrateOwner(ctx context.Context, newOwnerID string, legacyOwnerIDs ...string) (int, error)
}
