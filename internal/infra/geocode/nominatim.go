package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"laundrify/internal/domain/entity"
	"laundrify/internal/errors"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	nominatimUserAgent      = "laundrify/1.0"
)

// nominatimAddress mirrors the addressdetails block of a Nominatim response.
// The field names line up with the OpenCage component map, so the same
// conversion applies.
type nominatimAddress = openCageComponents

type nominatimResult struct {
	OSMID       int64            `json:"osm_id"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}

type nominatimProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimProvider creates the keyless open-data tier. It serves both
// reverse geocoding and suggestion search.
func NewNominatimProvider(baseURL string, timeout time.Duration) *nominatimProvider {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &nominatimProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *nominatimProvider) Name() string {
	return "nominatim"
}

func (p *nominatimProvider) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=19&addressdetails=1&accept-language=en&countrycodes=in",
		p.baseURL, coords.Lat, coords.Lng)

	var result nominatimResult
	if err := p.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if result.DisplayName == "" {
		return nil, errors.New("nominatim returned no result")
	}

	return p.toPlace(&result), nil
}

func (p *nominatimProvider) ForwardGeocode(ctx context.Context, address string) (*entity.Place, error) {
	results, err := p.search(ctx, address, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("nominatim returned no results")
	}

	return p.toPlace(&results[0]), nil
}

func (p *nominatimProvider) Suggest(ctx context.Context, query string, _ string) ([]entity.Suggestion, error) {
	results, err := p.search(ctx, query+", India", 10)
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.Suggestion, 0, len(results))
	for i := range results {
		result := &results[i]
		main := result.Name
		if main == "" {
			main = strings.SplitN(result.DisplayName, ",", 2)[0]
		}
		secondary := ""
		if idx := strings.Index(result.DisplayName, ","); idx >= 0 {
			secondary = strings.TrimSpace(result.DisplayName[idx+1:])
		}

		suggestion := entity.Suggestion{
			PlaceID:       fmt.Sprintf("nominatim_%d", result.OSMID),
			Text:          result.DisplayName,
			MainText:      main,
			SecondaryText: secondary,
			Source:        p.Name(),
		}
		if coords := result.coordinates(); coords != nil {
			suggestion.Location = coords
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

func (p *nominatimProvider) ResolveSuggestion(ctx context.Context, placeID string, _ string) (*entity.Place, error) {
	osmID, ok := strings.CutPrefix(placeID, "nominatim_")
	if !ok {
		return nil, errors.Errorf("not a nominatim place id: %s", placeID)
	}

	endpoint := fmt.Sprintf("%s/lookup?format=json&osm_ids=N%s,W%s,R%s&addressdetails=1&accept-language=en",
		p.baseURL, osmID, osmID, osmID)

	var results []nominatimResult
	if err := p.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("nominatim lookup returned no results")
	}

	return p.toPlace(&results[0]), nil
}

func (p *nominatimProvider) search(ctx context.Context, query string, limit int) ([]nominatimResult, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=%d&addressdetails=1&countrycodes=in&accept-language=en",
		p.baseURL, url.QueryEscape(query), limit)

	var results []nominatimResult
	if err := p.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *nominatimProvider) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute nominatim request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read nominatim response")
	}

	return errors.Wrap(json.Unmarshal(data, out), "decode nominatim response")
}

func (p *nominatimProvider) toPlace(result *nominatimResult) *entity.Place {
	place := &entity.Place{
		PlaceID:          fmt.Sprintf("nominatim_%d", result.OSMID),
		DisplayName:      result.Name,
		FormattedAddress: result.DisplayName,
		Components:       convertOpenCageComponents(result.Address),
	}
	place.Location = result.coordinates()

	return place
}

func (r *nominatimResult) coordinates() *entity.Coordinates {
	lat, latErr := strconv.ParseFloat(r.Lat, 64)
	lng, lngErr := strconv.ParseFloat(r.Lon, 64)
	if latErr != nil || lngErr != nil {
		return nil
	}

	return &entity.Coordinates{Lat: lat, Lng: lng}
}
