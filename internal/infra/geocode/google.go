package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"
)

const (
	defaultGoogleBaseURL = "https://places.googleapis.com"

	placeFieldMask = "id,displayName,formattedAddress,location,addressComponents,types"
)

type googleProvider struct {
	apiKey      string
	baseURL     string
	regionCodes []string
	httpClient  *http.Client
}

// NewGoogleProvider creates the primary suggestion tier backed by the Places
// autocomplete API. Session tokens group keystrokes of one search session.
func NewGoogleProvider(apiKey, baseURL string, regionCodes []string, timeout time.Duration) service.SuggestProvider {
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}
	if len(regionCodes) == 0 {
		regionCodes = []string{"in"}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &googleProvider{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		regionCodes: regionCodes,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (p *googleProvider) Name() string {
	return "google"
}

type autocompleteRequest struct {
	Input               string   `json:"input"`
	SessionToken        string   `json:"sessionToken,omitempty"`
	IncludedRegionCodes []string `json:"includedRegionCodes,omitempty"`
}

type autocompleteResponse struct {
	Suggestions []struct {
		PlacePrediction struct {
			PlaceID string `json:"placeId"`
			Text    struct {
				Text string `json:"text"`
			} `json:"text"`
			StructuredFormat struct {
				MainText struct {
					Text string `json:"text"`
				} `json:"mainText"`
				SecondaryText struct {
					Text string `json:"text"`
				} `json:"secondaryText"`
			} `json:"structuredFormat"`
		} `json:"placePrediction"`
	} `json:"suggestions"`
}

func (p *googleProvider) Suggest(ctx context.Context, query string, sessionToken string) ([]entity.Suggestion, error) {
	body, err := json.Marshal(autocompleteRequest{
		Input:               query,
		SessionToken:        sessionToken,
		IncludedRegionCodes: p.regionCodes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal autocomplete request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/places:autocomplete", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build autocomplete request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", p.apiKey)

	data, err := p.execute(req)
	if err != nil {
		return nil, err
	}

	var payload autocompleteResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode autocomplete response")
	}

	suggestions := make([]entity.Suggestion, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		prediction := s.PlacePrediction
		main := prediction.StructuredFormat.MainText.Text
		if main == "" {
			main = prediction.Text.Text
		}
		suggestions = append(suggestions, entity.Suggestion{
			PlaceID:       prediction.PlaceID,
			Text:          prediction.Text.Text,
			MainText:      main,
			SecondaryText: prediction.StructuredFormat.SecondaryText.Text,
			Source:        p.Name(),
		})
	}

	return suggestions, nil
}

type placeResponse struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	AddressComponents []struct {
		LongText  string   `json:"longText"`
		ShortText string   `json:"shortText"`
		Types     []string `json:"types"`
	} `json:"addressComponents"`
	Types []string `json:"types"`
}

func (p *googleProvider) ResolveSuggestion(ctx context.Context, placeID string, sessionToken string) (*entity.Place, error) {
	endpoint := p.baseURL + "/v1/places/" + placeID
	if sessionToken != "" {
		endpoint += "?sessionToken=" + sessionToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build place details request")
	}
	req.Header.Set("X-Goog-Api-Key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", placeFieldMask)

	data, err := p.execute(req)
	if err != nil {
		return nil, err
	}

	var payload placeResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode place details response")
	}

	place := &entity.Place{
		PlaceID:          payload.ID,
		DisplayName:      payload.DisplayName.Text,
		FormattedAddress: payload.FormattedAddress,
		Location:         &entity.Coordinates{Lat: payload.Location.Latitude, Lng: payload.Location.Longitude},
		Types:            payload.Types,
	}
	for _, c := range payload.AddressComponents {
		place.Components = append(place.Components, entity.AddressComponent{
			LongText:  c.LongText,
			ShortText: c.ShortText,
			Types:     c.Types,
		})
	}

	return place, nil
}

func (p *googleProvider) execute(req *http.Request) ([]byte, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute places request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("places api returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read places response")
	}

	return data, nil
}
