package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/saferoute/safe_route_navigator/internal/config"
	"github.com/saferoute/safe_route_navigator/internal/geocoding"
	"github.com/saferoute/safe_route_navigator/internal/models"
	"github.com/saferoute/safe_route_navigator/internal/routing"
	"github.com/saferoute/safe_route_navigator/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSafetyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSafetyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanRoutes_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PlanRoutesRequest{
		ClientID:    "user-1",
		Origin:      "Guindy",
		Destination: "T Nagar",
	}
	expectedRoutes := []models.ScoredRoute{
		{SafetyScore: 92.5, Category: "safe", Color: "#10B981", Label: "Safest Route"},
		{SafetyScore: 55.0, Category: "moderate", Color: "#F59E0B", Label: "Moderate Route"},
	}

	mockService.EXPECT().
		PlanRoutes(gomock.Any(), "user-1", "Guindy", "T Nagar").
		Return(expectedRoutes, "Daytime Risk: NORMAL", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RoutesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Routes, 2)
	assert.Equal(t, 92.5, resp.Routes[0].SafetyScore)
	assert.Equal(t, "Daytime Risk: NORMAL", resp.TimeContext)
}

func TestPlanRoutes_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().PlanRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBufferString(`{"origin": "Guindy"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestPlanRoutes_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PlanRoutesRequest{ // Отсутствует Destination
		ClientID: "user-1",
		Origin:   "Guindy",
	}

	mockService.EXPECT().PlanRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Destination' failed on the 'required' tag")
}

func TestPlanRoutes_PlaceNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PlanRoutesRequest{
		ClientID:    "user-1",
		Origin:      "Nowhere",
		Destination: "T Nagar",
	}

	mockService.EXPECT().
		PlanRoutes(gomock.Any(), "user-1", "Nowhere", "T Nagar").
		Return(nil, "", fmt.Errorf("service: could not geocode origin: %w", geocoding.ErrPlaceNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not find one or both locations")
}

func TestPlanRoutes_NoRoute(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PlanRoutesRequest{
		ClientID:    "user-1",
		Origin:      "Guindy",
		Destination: "T Nagar",
	}

	mockService.EXPECT().
		PlanRoutes(gomock.Any(), "user-1", "Guindy", "T Nagar").
		Return(nil, "", routing.ErrNoRoute).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no routes found between these locations")
}

func TestPlanRoutes_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PlanRoutesRequest{
		ClientID:    "user-1",
		Origin:      "Guindy",
		Destination: "T Nagar",
	}
	serviceError := errors.New("snapshot store corrupted")

	mockService.EXPECT().
		PlanRoutes(gomock.Any(), "user-1", "Guindy", "T Nagar").
		Return(nil, "", serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetHeatmap_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedPoints := []models.HeatmapPoint{
		{Lat: 13.0475, Lng: 80.209, Intensity: 0.8},
		{Lat: 13.0604, Lng: 80.2496, Intensity: 0.7},
	}

	mockService.EXPECT().GetHeatmap(gomock.Any()).Return(expectedPoints).Times(1)

	w := makeRequest(router, "GET", "/api/v1/heatmap", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HeatmapResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.HeatmapPoints, 2)
	assert.Equal(t, 0.8, resp.HeatmapPoints[0].Intensity)
}

func TestFindSafeHavens_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SafeHavensRequest{Lat: 13.05, Lng: 80.22, Limit: 2}
	expectedHavens := []models.SafeHaven{
		{Category: models.CategoryPoliceStation, Lat: 13.0418, Lng: 80.2341, DistanceKm: 1.2},
		{Category: models.CategoryCCTVZone, Lat: 13.0632, Lng: 80.2281, DistanceKm: 1.6},
	}

	mockService.EXPECT().FindSafeHavens(gomock.Any(), 13.05, 80.22, 2).Return(expectedHavens, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/safehavens", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SafeHavensResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.SafeHavens, 2)
}

func TestFindSafeHavens_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SafeHavensRequest{Lat: 13.05, Lng: 80.22} // Лимит не задан

	mockService.EXPECT().FindSafeHavens(gomock.Any(), 13.05, 80.22, 5).Return([]models.SafeHaven{}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/safehavens", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindSafeHavens_LimitTooLarge(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SafeHavensRequest{Lat: 13.05, Lng: 80.22, Limit: 50}

	mockService.EXPECT().FindSafeHavens(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/safehavens", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Limit' failed on the 'lte' tag")
}

func TestRadarScan_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{ClientID: "user-1", Lat: 13.05, Lng: 80.22}
	expectedScan := models.RadarScan{
		SafetyScore:  77.5,
		NearbyCrimes: 2,
	}

	mockService.EXPECT().ScoreRadar(gomock.Any(), "user-1", 13.05, 80.22).Return(expectedScan, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/radar/scan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.RadarScan
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 77.5, resp.SafetyScore)
	assert.Equal(t, 2, resp.NearbyCrimes)
}

func TestRadarScan_InvalidLatitude(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{ClientID: "user-1", Lat: 200.0, Lng: 80.22}

	mockService.EXPECT().ScoreRadar(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/radar/scan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Lat' failed on the 'latitude' tag")
}

func TestRadarScan_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{ClientID: "user-1", Lat: 13.05, Lng: 80.22}
	serviceError := errors.New("failed to score radar")

	mockService.EXPECT().ScoreRadar(gomock.Any(), "user-1", 13.05, 80.22).Return(models.RadarScan{}, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/radar/scan", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSendSOS_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{ClientID: "user-1", Lat: 13.05, Lng: 80.22}
	expectedContext := models.AlertContext{
		Lat:       13.05,
		Lng:       80.22,
		Timestamp: "2026-03-15 23:30:00",
		Dangers: []models.NearbyIncident{
			{Category: models.CategoryAssault, Severity: 9, DistanceMeters: 220},
		},
	}

	mockService.EXPECT().SendAlert(gomock.Any(), "user-1", 13.05, 80.22).Return(expectedContext, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15 23:30:00", resp.SOSContext.Timestamp)
	assert.Len(t, resp.SOSContext.Dangers, 1)
}

func TestSendSOS_MissingClientID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{Lat: 13.05, Lng: 80.22}

	mockService.EXPECT().SendAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ClientID' failed on the 'required' tag")
}

func TestSendSOS_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := PointRequest{ClientID: "user-1", Lat: 13.05, Lng: 80.22}
	serviceError := errors.New("failed to publish alert")

	mockService.EXPECT().SendAlert(gomock.Any(), "user-1", 13.05, 80.22).Return(models.AlertContext{}, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedStats := models.DatasetStats{
		TotalIncidents: 34,
		HighSeverity:   12,
		SafeZones:      6,
		TimeContext:    "Night Travel Risk: HIGH",
	}

	mockService.EXPECT().GetStats(gomock.Any()).Return(expectedStats, 42, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 34, resp.TotalIncidents)
	assert.Equal(t, 12, resp.HighSeverity)
	assert.Equal(t, 6, resp.SafeZones)
	assert.Equal(t, 42, resp.ActiveClients)
	assert.Equal(t, "Night Travel Risk: HIGH", resp.TimeContext)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetStats(gomock.Any()).Return(models.DatasetStats{}, 0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetStats_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
