package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrPlaceNotFound возвращается, когда геокодер не нашел место
var ErrPlaceNotFound = errors.New("place not found")

// NominatimClient - клиент геокодирования Nominatim. Один запрос,
// короткий таймаут, без повторов: сбой немедленно возвращается вызывающему.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimClient создает клиент с заданным базовым URL и таймаутом
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode преобразует название места в координаты (lat, lng)
func (c *NominatimClient) Geocode(ctx context.Context, place string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(place))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", "SafeRouteNavigator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude in geocoding response: %w", err)
	}
	return lat, lon, nil
}
