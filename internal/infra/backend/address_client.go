// Package backend implements the client for the remote address API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"laundrify/config"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/repository"
	"laundrify/internal/errors"
	"laundrify/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 10 * time.Second

// backendRecord is the wire shape of an address on the remote API.
type backendRecord struct {
	ID           string              `json:"_id,omitempty"`
	FullAddress  string              `json:"full_address"`
	Area         string              `json:"area,omitempty"`
	City         string              `json:"city,omitempty"`
	Pincode      string              `json:"pincode,omitempty"`
	Landmark     string              `json:"landmark,omitempty"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	Title        string              `json:"title,omitempty"`
	AddressType  string              `json:"address_type,omitempty"`
	ContactPhone string              `json:"contact_phone,omitempty"`
	CreatedAt    time.Time           `json:"created_at,omitempty"`
	Status       string              `json:"status,omitempty"`
}

type addressClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// group collapses identical in-flight requests so a double-tap on save
	// results in one network call.
	group singleflight.Group
}

// ClientParams holds dependencies for the address client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAddressClient creates the remote address API client.
func NewAddressClient(params ClientParams) (repository.AddressAPI, error) {
	cfg := params.Config.Backend
	if cfg == nil || cfg.BaseURL == "" {
		// No backend configured. The app runs in local-only mode and the
		// sync layer treats every write as pending.
		return nil, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &addressClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

func (c *addressClient) CreateAddress(ctx context.Context, ownerID string, record *entity.AddressRecord) (*entity.AddressRecord, error) {
	body, err := json.Marshal(toBackendRecord(record))
	if err != nil {
		return nil, errors.Wrap(err, "marshal address")
	}

	data, err := c.do(ctx, http.MethodPost, "/addresses", ownerID, body)
	if err != nil {
		return nil, err
	}

	var created backendRecord
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, errors.Wrap(err, "decode created address")
	}

	result := fromBackendRecord(&created)
	// Preserve the local identity so the caller can correlate.
	result.ID = record.ID

	return result, nil
}

func (c *addressClient) ListAddresses(ctx context.Context, ownerID string) ([]*entity.AddressRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/addresses", ownerID, nil)
	if err != nil {
		return nil, err
	}

	var raw []backendRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode address list")
	}

	records := make([]*entity.AddressRecord, 0, len(raw))
	for i := range raw {
		record := fromBackendRecord(&raw[i])
		if record.Status == entity.StatusDeleted {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (c *addressClient) UpdateAddress(ctx context.Context, ownerID string, record *entity.AddressRecord) (*entity.AddressRecord, error) {
	if record.BackendID == "" {
		return nil, repository.ErrRemoteNotFound
	}

	body, err := json.Marshal(toBackendRecord(record))
	if err != nil {
		return nil, errors.Wrap(err, "marshal address")
	}

	data, err := c.do(ctx, http.MethodPut, "/addresses/"+record.BackendID, ownerID, body)
	if err != nil {
		return nil, err
	}

	var updated backendRecord
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, errors.Wrap(err, "decode updated address")
	}

	result := fromBackendRecord(&updated)
	result.ID = record.ID

	return result, nil
}

func (c *addressClient) DeleteAddress(ctx context.Context, ownerID string, backendID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/addresses/"+backendID, ownerID, nil)

	return err
}

// do executes one HTTP call, collapsing identical concurrent requests.
func (c *addressClient) do(ctx context.Context, method, path, ownerID string, body []byte) ([]byte, error) {
	url := c.baseURL + path
	key := util.RequestFingerprint(method, ownerID+"\x00"+url, body)

	result, err, shared := c.group.Do(key, func() (any, error) {
		return c.roundTrip(ctx, method, url, ownerID, body)
	})
	if shared {
		c.logger.Debug("collapsed duplicate request",
			slog.String("method", method),
			slog.String("path", path),
		)
	}
	if err != nil {
		return nil, err
	}

	data, _ := result.([]byte)

	return data, nil
}

func (c *addressClient) roundTrip(ctx context.Context, method, url, ownerID string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("user-id", ownerID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, repository.ErrRemoteRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, repository.ErrRemoteNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("backend returned status %d", resp.StatusCode)
	}

	return data, nil
}

func toBackendRecord(record *entity.AddressRecord) *backendRecord {
	return &backendRecord{
		ID:           record.BackendID,
		FullAddress:  record.FullAddress,
		Area:         record.EffectiveArea(),
		City:         record.City,
		Pincode:      record.PostalCode,
		Landmark:     record.Landmark,
		Coordinates:  record.Coordinates,
		Title:        record.Label,
		AddressType:  string(record.Type),
		ContactPhone: record.ContactPhone,
		CreatedAt:    record.CreatedAt,
		Status:       string(record.Status),
	}
}

func fromBackendRecord(raw *backendRecord) *entity.AddressRecord {
	status := entity.AddressStatus(raw.Status)
	if status == "" {
		status = entity.StatusActive
	}
	addressType := entity.AddressType(raw.AddressType)
	if addressType == "" {
		addressType = entity.AddressTypeOther
	}

	record := &entity.AddressRecord{
		BackendID:    raw.ID,
		Area:         raw.Area,
		City:         raw.City,
		PostalCode:   raw.Pincode,
		Landmark:     raw.Landmark,
		FullAddress:  raw.FullAddress,
		Coordinates:  raw.Coordinates,
		Label:        raw.Title,
		Type:         addressType,
		ContactPhone: raw.ContactPhone,
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.CreatedAt,
		Status:       status,
		Synced:       true,
	}

	return record
}

// Module provides the backend FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAddressClient),
)
