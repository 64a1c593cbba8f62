package geo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/config"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/circuitbreaker"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/metrics"
)

// ErrAddressNotFound means the API answered but had no match. Not retryable.
var ErrAddressNotFound = fmt.Errorf("address not found")

// Coordinates is a geocoding result.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder wraps a Nominatim-style address search API. Outbound requests are
// spaced at least minInterval apart process-wide, keyed on a single
// mutex-guarded timestamp. There are no retries; each address gets one shot.
type Geocoder struct {
	baseURL     string
	userAgent   string
	minInterval time.Duration
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
	rdb         *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

func NewGeocoder(cfg config.GeocoderConfig, rdb *redis.Client, logger *zap.Logger) *Geocoder {
	return &Geocoder{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		minInterval: time.Duration(cfg.MinIntervalMs) * time.Millisecond,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		breaker:  circuitbreaker.New(circuitbreaker.DefaultConfig()),
		rdb:      rdb,
		cacheTTL: time.Duration(cfg.CacheTTLHours) * time.Hour,
		logger:   logger,
	}
}

// Geocode resolves one address to coordinates. Cached results skip the rate
// limiter entirely; everything else waits its turn.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("empty address")
	}

	if coords := g.cacheGet(ctx, address); coords != nil {
		return coords, nil
	}

	var coords *Coordinates
	start := time.Now()
	err := g.breaker.Execute(func() error {
		g.waitTurn()

		var innerErr error
		coords, innerErr = g.lookup(ctx, address)
		return innerErr
	})
	if err != nil {
		status := "error"
		if err == circuitbreaker.ErrCircuitBreakerOpen {
			status = "open"
		} else if err == ErrAddressNotFound {
			status = "miss"
		}
		metrics.RecordGeocodeCallLatency(status, time.Since(start))
		return nil, err
	}

	metrics.RecordGeocodeCallLatency("ok", time.Since(start))
	g.cacheSet(ctx, address, coords)
	return coords, nil
}

// waitTurn blocks until minInterval has passed since the previous outbound
// request and claims the next slot. Callers queue on the mutex, so spacing
// holds across goroutines within this process (not across processes).
func (g *Geocoder) waitTurn() {
	g.mu.Lock()
	defer g.mu.Unlock()

	elapsed := time.Since(g.lastRequest)
	if elapsed < g.minInterval {
		time.Sleep(g.minInterval - elapsed)
	}
	g.lastRequest = time.Now()
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) lookup(ctx context.Context, address string) (*Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		g.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q: %w", results[0].Lon, err)
	}

	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}

func cacheKey(address string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(address)))
	return "geocode:" + hex.EncodeToString(sum[:16])
}

func (g *Geocoder) cacheGet(ctx context.Context, address string) *Coordinates {
	if g.rdb == nil {
		return nil
	}

	raw, err := g.rdb.Get(ctx, cacheKey(address)).Bytes()
	if err != nil {
		if err != redis.Nil && g.logger != nil {
			g.logger.Warn("Geocode cache read failed", zap.Error(err))
		}
		return nil
	}

	var coords Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return nil
	}
	return &coords
}

func (g *Geocoder) cacheSet(ctx context.Context, address string, coords *Coordinates) {
	if g.rdb == nil || coords == nil {
		return
	}

	raw, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := g.rdb.Set(ctx, cacheKey(address), raw, g.cacheTTL).Err(); err != nil && g.logger != nil {
		g.logger.Warn("Geocode cache write failed", zap.Error(err))
	}
}
