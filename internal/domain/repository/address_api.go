// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"laundrify/internal/domain/entity"
	"laundrify/internal/errors"
)

// Domain-specific errors for the remote address API.
var (
	// ErrRemoteNotFound is returned when the backend has no such address.
	ErrRemoteNotFound = errors.New("remote address not found")
	// ErrRemoteRateLimited is returned when the backend rejects the call
	// with a rate limit response.
	ErrRemoteRateLimited = errors.New("remote address api rate limited")
)

// AddressAPI defines the interface for the remote address backend. The local
// store is always authoritative for reads when the backend is unreachable, so
// every method here must tolerate being skipped by callers.
type AddressAPI interface {
	// CreateAddress persists a new address remotely and returns the record
	// with its backend-assigned identifier filled in.
	CreateAddress(ctx context.Context, ownerID string, record *entity.AddressRecord) (*entity.AddressRecord, error)

	// ListAddresses retrieves all active addresses for an owner.
	ListAddresses(ctx context.Context, ownerID string) ([]*entity.AddressRecord, error)

	// UpdateAddress updates an existing remote address record.
	UpdateAddress(ctx context.Context, ownerID string, record *entity.AddressRecord) (*entity.AddressRecord, error)

	// DeleteAddress marks a remote address deleted. Returns ErrRemoteNotFound
	// when the backend never had the record.
	DeleteAddress(ctx context.Context, ownerID string, backendID string) error
}
