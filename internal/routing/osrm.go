package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/models"
)

// ErrNoRoute возвращается, когда провайдер не нашел ни одного маршрута
var ErrNoRoute = errors.New("no route found")

// OSRMClient - клиент маршрутизации OSRM. Короткий таймаут, без повторов.
type OSRMClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRMClient создает клиент с заданным базовым URL и таймаутом
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates []models.Coordinate `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// FetchRoutes запрашивает до alternatives пеших маршрутов между точками.
// Координаты передаются в порядке (lng, lat), как требует OSRM.
func (c *OSRMClient) FetchRoutes(ctx context.Context, originLat, originLng, destLat, destLng float64, alternatives int) ([]models.RouteCandidate, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/walking/%f,%f;%f,%f?overview=full&geometries=geojson&alternatives=%d",
		c.baseURL, originLng, originLat, destLng, destLat, alternatives,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, ErrNoRoute
	}

	candidates := make([]models.RouteCandidate, 0, len(parsed.Routes))
	for _, route := range parsed.Routes {
		candidates = append(candidates, models.RouteCandidate{
			Geometry:       route.Geometry.Coordinates,
			DistanceMeters: route.Distance,
			DurationSecs:   route.Duration,
		})
	}
	return candidates, nil
}
