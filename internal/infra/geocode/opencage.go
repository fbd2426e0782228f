// Package geocode implements the geocoding provider chain and the gateway
// that orchestrates it.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"
)

const defaultOpenCageBaseURL = "https://api.opencagedata.com"

// openCageComponents is the component map OpenCage returns per result.
type openCageComponents struct {
	HouseNumber   string `json:"house_number"`
	Road          string `json:"road"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
	StateCode     string `json:"state_code"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

type openCageResult struct {
	Formatted  string                     `json:"formatted"`
	Geometry   struct{ Lat, Lng float64 } `json:"geometry"`
	Components openCageComponents         `json:"components"`
}

type openCageResponse struct {
	Results []openCageResult `json:"results"`
}

type openCageProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenCageProvider creates the OpenCage geocoding tier.
func NewOpenCageProvider(apiKey, baseURL string, timeout time.Duration) service.GeocodingProvider {
	if baseURL == "" {
		baseURL = defaultOpenCageBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &openCageProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *openCageProvider) Name() string {
	return "opencage"
}

func (p *openCageProvider) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	query := fmt.Sprintf("%f+%f", coords.Lat, coords.Lng)

	return p.geocode(ctx, query)
}

func (p *openCageProvider) ForwardGeocode(ctx context.Context, address string) (*entity.Place, error) {
	return p.geocode(ctx, address)
}

func (p *openCageProvider) geocode(ctx context.Context, query string) (*entity.Place, error) {
	endpoint := fmt.Sprintf("%s/geocode/v1/json?q=%s&key=%s&language=en&countrycode=in&limit=1",
		p.baseURL, url.QueryEscape(query), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build opencage request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute opencage request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("opencage returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read opencage response")
	}

	var payload openCageResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode opencage response")
	}
	if len(payload.Results) == 0 {
		return nil, errors.New("opencage returned no results")
	}

	result := payload.Results[0]
	place := &entity.Place{
		FormattedAddress: result.Formatted,
		Location:         &entity.Coordinates{Lat: result.Geometry.Lat, Lng: result.Geometry.Lng},
		Components:       convertOpenCageComponents(result.Components),
	}

	return place, nil
}

// convertOpenCageComponents normalizes the OpenCage component map into the
// tagged component list the parser understands.
func convertOpenCageComponents(c openCageComponents) []entity.AddressComponent {
	components := make([]entity.AddressComponent, 0, 7)

	if c.HouseNumber != "" {
		components = append(components, entity.AddressComponent{
			LongText: c.HouseNumber, ShortText: c.HouseNumber, Types: []string{"street_number"},
		})
	}
	if c.Road != "" {
		components = append(components, entity.AddressComponent{
			LongText: c.Road, ShortText: c.Road, Types: []string{"route"},
		})
	}
	if area := firstNonEmpty(c.Neighbourhood, c.Suburb); area != "" {
		components = append(components, entity.AddressComponent{
			LongText: area, ShortText: area, Types: []string{"sublocality_level_1", "sublocality"},
		})
	}
	if city := firstNonEmpty(c.City, c.Town, c.Village); city != "" {
		components = append(components, entity.AddressComponent{
			LongText: city, ShortText: city, Types: []string{"locality"},
		})
	}
	if c.State != "" {
		components = append(components, entity.AddressComponent{
			LongText: c.State, ShortText: firstNonEmpty(c.StateCode, c.State), Types: []string{"administrative_area_level_1"},
		})
	}
	if c.Postcode != "" {
		components = append(components, entity.AddressComponent{
			LongText: c.Postcode, ShortText: c.Postcode, Types: []string{"postal_code"},
		})
	}
	if c.Country != "" {
		components = append(components, entity.AddressComponent{
			LongText: c.Country, ShortText: strings.ToUpper(firstNonEmpty(c.CountryCode, c.Country)), Types: []string{"country"},
		})
	}

	return components
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
