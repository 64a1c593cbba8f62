package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/config"
)

func testGeocoder(baseURL string, intervalMs int) *Geocoder {
	return NewGeocoder(config.GeocoderConfig{
		BaseURL:       baseURL,
		UserAgent:     "weddingplanner-test",
		MinIntervalMs: intervalMs,
		CacheTTLHours: 1,
	}, nil, zap.NewNop())
}

func TestGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1 Main St, Springfield", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "weddingplanner-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"39.7817","lon":"-89.6501"}]`))
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL, 1)
	coords, err := g.Geocode(context.Background(), "1 Main St, Springfield")

	require.NoError(t, err)
	assert.InDelta(t, 39.7817, coords.Latitude, 1e-9)
	assert.InDelta(t, -89.6501, coords.Longitude, 1e-9)
}

func TestGeocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL, 1)
	_, err := g.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestGeocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL, 1)
	_, err := g.Geocode(context.Background(), "1 Main St")
	assert.Error(t, err)
}

func TestGeocode_EmptyAddress(t *testing.T) {
	g := testGeocoder("http://127.0.0.1:1", 1)
	_, err := g.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGeocode_EnforcesMinimumSpacing(t *testing.T) {
	var calls int32
	var timestamps []time.Time

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		timestamps = append(timestamps, time.Now())
		w.Write([]byte(`[{"lat":"1.0","lon":"2.0"}]`))
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL, 100)

	// distinct addresses so the cache cannot short-circuit
	_, err := g.Geocode(context.Background(), "first address")
	require.NoError(t, err)
	_, err = g.Geocode(context.Background(), "second address")
	require.NoError(t, err)

	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
	// allow a little skew from handler scheduling on the first call
	spacing := timestamps[1].Sub(timestamps[0])
	assert.GreaterOrEqual(t, spacing, 90*time.Millisecond)
}
