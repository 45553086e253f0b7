package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/metrics"
	"github.com/feral-file/rustaceans/internal/mocks"
)

func TestRouter_MetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	controller := mocks.NewMockController(ctrl)
	controller.EXPECT().TotalSupply(gomock.Any()).Return(uint64(7), nil)

	reg := prometheus.NewRegistry()
	s := New(Config{}, controller, mocks.NewMockRasterizer(ctrl), metrics.New(reg), reg)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rustaceans_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := prometheus.NewRegistry()
	s := New(Config{}, mocks.NewMockController(ctrl), mocks.NewMockRasterizer(ctrl), metrics.New(reg), reg)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
