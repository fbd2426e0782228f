package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"laundrify/internal/address"
	"laundrify/internal/domain/entity"
	domainerrors "laundrify/internal/domain/errors"
	"laundrify/internal/domain/repository"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"
	"laundrify/internal/usecase"

	"github.com/google/uuid"
)

const (
	savedRemotelyMessage = "Address saved successfully"
	savedLocallyMessage  = "Address saved locally. It will sync when the connection is restored."

	// legacyGuestPrefix narrows the migration scan to keys written before
	// login, such as addresses_guest_123.
	legacyGuestPrefix = service.AddressKeyPrefix + "guest"

	pushTimeout = 15 * time.Second
)

type addressService struct {
	api          repository.AddressAPI
	store        service.KeyValueStore
	availability service.AvailabilityChecker
	logger       *slog.Logger
	now          func() time.Time
}

// NewAddressService creates a new address synchronization service instance.
// api may be nil when no backend is configured; every write then stays
// local and pending.
func NewAddressService(
	api repository.AddressAPI,
	store service.KeyValueStore,
	availability service.AvailabilityChecker,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		api:          api,
		store:        store,
		availability: availability,
		logger:       logger,
		now:          time.Now,
	}
}

// SaveAddress validates the input, blocks on the service-area verdict, and
// dual-writes the record. The backend write is attempted first so its
// identifier can be stored locally; the local write happens regardless of
// the backend outcome.
func (s *addressService) SaveAddress(ctx context.Context, ownerID string, input *usecase.SaveAddressInput) (*usecase.SaveAddressResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty input")
	}

	parsed := &entity.ParsedAddress{
		HouseNumber: input.HouseNumber,
		Street:      input.Street,
		Landmark:    input.Landmark,
		Area:        input.Area,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
	}
	if parsed.Area == "" {
		parsed.Area = input.City
	}

	validation := address.Validate(parsed)
	if !validation.IsValid {
		details := strings.Join(validation.MissingFields, ", ")
		if details == "" {
			details = strings.Join(validation.Suggestions, "; ")
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(details)
	}

	record := s.buildRecord(input)

	if err := s.gateOnAvailability(ctx, record); err != nil {
		return nil, err
	}

	records, err := s.loadRecords(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Reuse the identity of a near-duplicate so repeated saves of the same
	// place update one record instead of multiplying entries. Records that
	// came from the backend carry no local ID; the freshly minted one on
	// record stands in for it.
	if existing := findDuplicate(records, record); existing != nil {
		if existing.ID != "" {
			record.ID = existing.ID
		}
		record.BackendID = existing.BackendID
		record.CreatedAt = existing.CreatedAt
	}

	syncedRemotely := s.pushRecord(ctx, ownerID, record)

	records = upsertByKey(records, record)
	if err := s.storeRecords(ctx, ownerID, records); err != nil {
		if !syncedRemotely {
			return nil, domainerrors.ErrAddressSaveFailed.WrapMessage(err.Error())
		}
		// The backend accepted the record; a cache write failure must not
		// turn the save into an error.
		s.logger.Error("local address write failed after remote save",
			slog.String("owner_id", ownerID), slog.Any("error", err))
	}

	message := savedRemotelyMessage
	if !syncedRemotely {
		message = savedLocallyMessage
	}

	return &usecase.SaveAddressResult{
		Record:         record,
		SyncedRemotely: syncedRemotely,
		Message:        message,
	}, nil
}

// ListAddresses prefers the backend view. On success the backend list is
// reconciled into the local cache record by record, newer timestamp winning,
// and local records the backend has never seen are pushed in the background.
// On failure the local cache is served as-is.
func (s *addressService) ListAddresses(ctx context.Context, ownerID string) ([]*entity.AddressRecord, error) {
	local, err := s.loadRecords(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.api == nil {
		return sortRecords(activeOnly(local)), nil
	}

	remote, err := s.api.ListAddresses(ctx, ownerID)
	if err != nil {
		s.logger.Warn("address list fetch failed, serving local cache",
			slog.String("owner_id", ownerID), slog.Any("error", err))

		return sortRecords(activeOnly(local)), nil
	}

	merged, pending := reconcile(remote, local)
	if err := s.storeRecords(ctx, ownerID, merged); err != nil {
		s.logger.Error("local address cache update failed",
			slog.String("owner_id", ownerID), slog.Any("error", err))
	}

	if len(pending) > 0 {
		go s.pushPending(ownerID, pending)
	}

	return sortRecords(activeOnly(merged)), nil
}

// DeleteAddress soft-deletes on the backend and removes the record from the
// local cache. The local removal proceeds even when the backend call fails.
func (s *addressService) DeleteAddress(ctx context.Context, ownerID string, id string) error {
	records, err := s.loadRecords(ctx, ownerID)
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range records {
		if rec.Key() == id || rec.ID == id || rec.BackendID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domainerrors.ErrAddressNotFound
	}

	target := records[idx]
	if s.api != nil && target.BackendID != "" {
		if err := s.api.DeleteAddress(ctx, ownerID, target.BackendID); err != nil &&
			!errors.Is(err, repository.ErrRemoteNotFound) {
			s.logger.Warn("remote address delete failed, removing locally",
				slog.String("owner_id", ownerID),
				slog.String("backend_id", target.BackendID),
				slog.Any("error", err))
		}
	}

	records = append(records[:idx], records[idx+1:]...)

	return s.storeRecords(ctx, ownerID, records)
}

// MigrateOwner folds address lists saved under legacy owner keys into
// newOwnerID's list and deletes the legacy keys. Near-duplicate records are
// merged with the newer timestamp winning.
func (s *addressService) MigrateOwner(ctx context.Context, newOwnerID string, legacyOwnerIDs ...string) (int, error) {
	targetKey := service.AddressKey(newOwnerID)

	legacyKeys := make([]string, 0, len(legacyOwnerIDs))
	if len(legacyOwnerIDs) == 0 {
		keys, err := s.store.Keys(ctx, legacyGuestPrefix)
		if err != nil {
			return 0, errors.Wrap(err, "scan legacy address keys")
		}
		legacyKeys = keys
	} else {
		for _, id := range legacyOwnerIDs {
			legacyKeys = append(legacyKeys, service.AddressKey(id))
		}
	}

	target, err := s.loadRecords(ctx, newOwnerID)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, key := range legacyKeys {
		if key == targetKey {
			continue
		}

		data, err := s.store.Get(ctx, key)
		if err != nil {
			return moved, errors.Wrapf(err, "read legacy key %s", key)
		}
		if data == nil {
			continue
		}

		var legacy []*entity.AddressRecord
		if err := json.Unmarshal(data, &legacy); err != nil {
			s.logger.Warn("dropping unreadable legacy address list",
				slog.String("key", key), slog.Any("error", err))
			legacy = nil
		}

		for _, rec := range legacy {
			var absorbed bool
			target, absorbed = mergeRecord(target, rec)
			if absorbed {
				moved++
			}
		}

		if err := s.store.Delete(ctx, key); err != nil {
			return moved, errors.Wrapf(err, "delete legacy key %s", key)
		}

		s.logger.Info("migrated legacy address list",
			slog.String("from", key), slog.String("to", targetKey))
	}

	if err := s.storeRecords(ctx, newOwnerID, target); err != nil {
		return moved, err
	}

	return moved, nil
}

func (s *addressService) buildRecord(input *usecase.SaveAddressInput) *entity.AddressRecord {
	now := s.now()

	record := &entity.AddressRecord{
		ID:           uuid.NewString(),
		HouseNumber:  strings.TrimSpace(input.HouseNumber),
		Street:       strings.TrimSpace(input.Street),
		Landmark:     strings.TrimSpace(input.Landmark),
		Area:         strings.TrimSpace(input.Area),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Label:        strings.TrimSpace(input.Label),
		Type:         input.Type,
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       entity.StatusActive,
	}
	if record.Type == "" {
		record.Type = entity.AddressTypeOther
	}
	if input.Coordinates != nil {
		coords := *input.Coordinates
		record.Coordinates = &coords
	}
	record.FullAddress = address.FullAddress(record)

	return record
}

func (s *addressService) gateOnAvailability(ctx context.Context, record *entity.AddressRecord) error {
	query := service.AvailabilityQuery{
		City:        record.EffectiveArea(),
		Pincode:     record.PostalCode,
		FullAddress: record.FullAddress,
		Coordinates: record.Coordinates,
	}
	if record.City != "" {
		query.City = record.City
	}

	verdict, err := s.availability.CheckAvailability(ctx, query)
	if err != nil {
		return domainerrors.ErrAvailabilityUnknown.WrapMessage(err.Error())
	}
	if verdict.IsAvailable {
		return nil
	}
	if verdict.Retryable {
		return domainerrors.ErrAvailabilityUnknown
	}

	return domainerrors.ErrAreaNotServiceable.WithDetails(verdict.Message)
}

// pushRecord attempts the backend write and reports whether it succeeded.
// The record is mutated in place with the backend's view on success and
// marked unsynced on failure.
func (s *addressService) pushRecord(ctx context.Context, ownerID string, record *entity.AddressRecord) bool {
	if s.api == nil {
		record.Synced = false

		return false
	}

	var (
		saved *entity.AddressRecord
		err   error
	)
	if record.BackendID != "" {
		saved, err = s.api.UpdateAddress(ctx, ownerID, record)
	} else {
		saved, err = s.api.CreateAddress(ctx, ownerID, record)
	}
	if err != nil {
		s.logger.Warn("remote address save failed, keeping record local",
			slog.String("owner_id", ownerID), slog.Any("error", err))
		record.Synced = false

		return false
	}

	*record = *saved
	record.Synced = true

	return true
}

// pushPending uploads records the backend has never seen. This runs in the
// background after a successful list; failures leave the records pending for
// the next attempt.
func (s *addressService) pushPending(ownerID string, pending []*entity.AddressRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	for _, rec := range pending {
		saved, err := s.api.CreateAddress(ctx, ownerID, rec)
		if err != nil {
			s.logger.Warn("background address push failed",
				slog.String("owner_id", ownerID),
				slog.String("id", rec.ID), slog.Any("error", err))
			continue
		}

		records, err := s.loadRecords(ctx, ownerID)
		if err != nil {
			return
		}
		saved.Synced = true
		records = upsertByKey(records, saved)
		if err := s.storeRecords(ctx, ownerID, records); err != nil {
			s.logger.Warn("background address cache update failed",
				slog.String("owner_id", ownerID), slog.Any("error", err))
		}
	}
}

func (s *addressService) loadRecords(ctx context.Context, ownerID string) ([]*entity.AddressRecord, error) {
	data, err := s.store.Get(ctx, service.AddressKey(ownerID))
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "read address list")
	}
	if data == nil {
		return nil, nil
	}

	var records []*entity.AddressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt list must not brick the address book. Start fresh and
		// let the next sync repopulate it.
		s.logger.Warn("resetting corrupt local address list",
			slog.String("owner_id", ownerID), slog.Any("error", err))

		return nil, nil
	}

	return records, nil
}

func (s *addressService) storeRecords(ctx context.Context, ownerID string, records []*entity.AddressRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encode address list")
	}

	if err := s.store.Set(ctx, service.AddressKey(ownerID), data); err != nil {
		return domainerrors.NewStorageExecuteError(err, "write address list")
	}

	return nil
}

// reconcile merges the backend list with the local cache. For records both
// sides know, the newer UpdatedAt wins. Local records without a backend
// identifier are kept and returned as pending uploads; local records the
// backend has forgotten are dropped.
func reconcile(remote, local []*entity.AddressRecord) (merged, pending []*entity.AddressRecord) {
	byBackendID := make(map[string]int, len(remote))
	merged = make([]*entity.AddressRecord, 0, len(remote)+len(local))
	for i, rec := range remote {
		merged = append(merged, rec)
		byBackendID[rec.BackendID] = i
	}

	for _, rec := range local {
		if rec.BackendID == "" {
			if rec.Status == entity.StatusActive && !rec.Synced {
				merged = append(merged, rec)
				pending = append(pending, rec)
			}
			continue
		}

		if i, ok := byBackendID[rec.BackendID]; ok && rec.NewerThan(merged[i]) {
			merged[i] = rec
		}
	}

	return merged, pending
}

// mergeRecord inserts rec into records unless an existing entry is a near
// duplicate, in which case the newer of the pair survives. The second return
// reports whether rec itself ended up in the list.
func mergeRecord(records []*entity.AddressRecord, rec *entity.AddressRecord) ([]*entity.AddressRecord, bool) {
	for i, existing := range records {
		if existing.Key() == rec.Key() || address.IsDuplicate(existing.FullAddress, rec.FullAddress) {
			if rec.NewerThan(existing) {
				records[i] = rec

				return records, true
			}

			return records, false
		}
	}

	return append(records, rec), true
}

func findDuplicate(records []*entity.AddressRecord, rec *entity.AddressRecord) *entity.AddressRecord {
	for _, existing := range records {
		if address.IsDuplicate(existing.FullAddress, rec.FullAddress) {
			return existing
		}
	}

	return nil
}

func upsertByKey(records []*entity.AddressRecord, rec *entity.AddressRecord) []*entity.AddressRecord {
	for i, existing := range records {
		if existing.Key() == rec.Key() || (existing.ID != "" && existing.ID == rec.ID) {
			records[i] = rec

			return records
		}
	}

	return append(records, rec)
}

func activeOnly(records []*entity.AddressRecord) []*entity.AddressRecord {
	out := make([]*entity.AddressRecord, 0, len(records))
	for _, rec := range records {
		if rec.Status != entity.StatusDeleted {
			out = append(out, rec)
		}
	}

	return out
}

func sortRecords(records []*entity.AddressRecord) []*entity.AddressRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})

	return records
}
