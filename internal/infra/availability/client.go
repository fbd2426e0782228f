// Package availability implements the service-area validator.
package availability

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
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const defaultTimeout = 8 * time.Second

// zone is a serviceable area: a set of name aliases plus an optional
// geographic bound for GPS verification.
type zone struct {
	Name    string
	Cities  []string
	Areas   []string
	Pincode string
	Bound   *orb.Bound
}

// serviceZones is the curated zone list used when the remote rule set is
// unreachable. Zone matching by GPS wins over name matching.
var serviceZones = []zone{
	{
		Name:    "Sector 69, Gurugram",
		Cities:  []string{"gurgaon", "gurugram"},
		Areas:   []string{"sector 69", "sector-69"},
		Pincode: "122101",
		Bound:   &orb.Bound{Min: orb.Point{77.0350, 28.3940}, Max: orb.Point{77.0390, 28.3980}},
	},
}

type checkRequest struct {
	City        string              `json:"city"`
	Pincode     string              `json:"pincode,omitempty"`
	FullAddress string              `json:"full_address,omitempty"`
	Coordinates *entity.Coordinates `json:"coordinates,omitempty"`
}

type checkResponse struct {
	IsAvailable bool   `json:"is_available"`
	MatchedZone string `json:"matched_zone,omitempty"`
	Message     string `json:"message,omitempty"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the availability checker, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChecker creates the service-area validator. Without a configured remote
// endpoint it runs purely on the curated zone list.
func NewChecker(params ClientParams) service.AvailabilityChecker {
	cfg := params.Config.Availability

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}
}

// CheckAvailability resolves the serviceability verdict. Remote failures
// degrade to the curated zone list; when that cannot produce a positive
// match either, the verdict is unavailable and retryable.
func (c *client) CheckAvailability(ctx context.Context, query service.AvailabilityQuery) (*entity.ServiceAvailability, error) {
	if c.baseURL == "" {
		return c.checkLocal(query, false), nil
	}

	verdict, err := c.checkRemote(ctx, query)
	if err != nil {
		c.logger.Warn("remote availability check failed, using local zones",
			slog.String("error", err.Error()),
		)

		return c.checkLocal(query, true), nil
	}

	return verdict, nil
}

func (c *client) checkRemote(ctx context.Context, query service.AvailabilityQuery) (*entity.ServiceAvailability, error) {
	body, err := json.Marshal(checkRequest{
		City:        query.City,
		Pincode:     query.Pincode,
		FullAddress: query.FullAddress,
		Coordinates: query.Coordinates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal availability request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/detected-locations/check-availability", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build availability request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute availability request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("availability endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read availability response")
	}

	var payload checkResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode availability response")
	}

	return &entity.ServiceAvailability{
		IsAvailable: payload.IsAvailable,
		MatchedZone: payload.MatchedZone,
		Message:     payload.Message,
	}, nil
}

// checkLocal matches against the curated zones. remoteFailed marks negative
// verdicts retryable, since the authoritative rule set was unreachable.
func (c *client) checkLocal(query service.AvailabilityQuery, remoteFailed bool) *entity.ServiceAvailability {
	// GPS wins over name matching.
	if query.Coordinates != nil {
		point := query.Coordinates.Point()
		for _, z := range serviceZones {
			if z.Bound != nil && z.Bound.Contains(point) {
				return &entity.ServiceAvailability{
					IsAvailable: true,
					MatchedZone: z.Name,
					Message:     "Service available in " + z.Name + " (GPS verified)",
				}
			}
		}
	}

	haystack := strings.ToLower(strings.TrimSpace(query.City + " " + query.FullAddress))
	for _, z := range serviceZones {
		if !matchesAny(haystack, z.Cities) {
			continue
		}
		if matchesAny(haystack, z.Areas) || (z.Pincode != "" && query.Pincode == z.Pincode) {
			return &entity.ServiceAvailability{
				IsAvailable: true,
				MatchedZone: z.Name,
				Message:     "Service available in " + z.Name,
			}
		}
	}

	return &entity.ServiceAvailability{
		IsAvailable: false,
		Message:     "Sorry, we do not deliver to this area yet",
		Retryable:   remoteFailed,
	}
}

func matchesAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}

	return false
}

// Module provides the availability FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChecker),
)
