package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/multipool/internal/coins"
	"github.com/MKhiriev/multipool/internal/logger"
	"github.com/MKhiriev/multipool/internal/pool"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type fakePools pool.ConfigMap

func (f fakePools) Pools() pool.ConfigMap { return pool.ConfigMap(f) }

type fakeRates map[string]float64

func (f fakeRates) Rates(_ context.Context, _ []string) (map[string]float64, error) {
	return f, nil
}

func testConfigMap() fakePools {
	return fakePools{
		"verus": &pool.Config{
			CoinName: "verus",
			Profile:  coins.Profile{Name: "verus", Symbol: "VRSC", Algorithm: "verushash"},
			Options:  map[string]any{"ports": map[string]any{"4042": map[string]any{}, "4043": map[string]any{}}},
			Enabled:  true,
		},
		"litecoin": &pool.Config{
			CoinName: "litecoin",
			Profile:  coins.Profile{Name: "litecoin", Symbol: "LTC", Algorithm: "scrypt"},
			Options:  map[string]any{"ports": map[string]any{"3032": map[string]any{}}},
			Enabled:  true,
		},
	}
}

func newTestServer(t *testing.T, rates RateProvider) *httptest.Server {
	t.Helper()

	build := BuildInfo{Version: "1.2.3", Date: "2026-02-01", Commit: "abc1234"}
	h := NewHandler(testConfigMap(), rates, build, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv
}

// ── /api/pools ────────────────────────────────────────────────────────────────

func TestPoolList(t *testing.T) {
	// Arrange
	srv := newTestServer(t, nil)

	// Act
	resp, err := http.Get(srv.URL + "/api/pools")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var summaries []poolSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	require.Len(t, summaries, 2)

	// sorted by coin name
	assert.Equal(t, "litecoin", summaries[0].Coin)
	assert.Equal(t, []string{"3032"}, summaries[0].Ports)
	assert.Equal(t, "verus", summaries[1].Coin)
	assert.Equal(t, []string{"4042", "4043"}, summaries[1].Ports)
}

// ── /api/stats ────────────────────────────────────────────────────────────────

func TestPortalStats_WithRates(t *testing.T) {
	srv := newTestServer(t, fakeRates{"VRSC": 2.31, "LTC": 84.2})

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats portalStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))

	assert.Equal(t, 2, stats.PoolCount)
	assert.Equal(t, 3, stats.PortCount)
	assert.Equal(t, map[string]float64{"VRSC": 2.31, "LTC": 84.2}, stats.Rates)
}

func TestPortalStats_WithoutRateProvider(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats portalStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))

	assert.Nil(t, stats.Rates)
}

// ── /api/version ──────────────────────────────────────────────────────────────

func TestVersionInfo(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	var build BuildInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&build))

	assert.Equal(t, BuildInfo{Version: "1.2.3", Date: "2026-02-01", Commit: "abc1234"}, build)
}

// ── trace ID middleware ───────────────────────────────────────────────────────

func TestWithTraceID_EchoesSuppliedID(t *testing.T) {
	srv := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/version", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-42", resp.Header.Get(traceIDHeader))
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}
