// Package exercisedb reads the exercise catalog from the ExerciseDB API on
// RapidAPI and falls back to a built-in catalog when that fails.
package exercisedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"alcyxob/fittrack/internal/domain"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL  = "https://exercisedb.p.rapidapi.com"
	defaultLimit    = 50
	defaultCacheTTL = time.Hour
)

// Source tells where a catalog came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

var errUnrecognizedShape = errors.New("invalid exercise API response format")

type Client struct {
	APIKey     string
	Host       string // x-rapidapi-host
	BaseURL    string
	Limit      int
	HTTPClient *http.Client
	Cache      *freecache.Cache
	CacheTTL   time.Duration
}

// Exercises returns the catalog. It always succeeds: on any failure the
// built-in catalog is returned with SourceFallback.
func (c *Client) Exercises(ctx context.Context) ([]domain.Exercise, Source) {
	cacheKey := []byte(fmt.Sprintf("exercises::%d", c.limit()))
	if exercises, ok := c.fromCache(cacheKey); ok {
		return exercises, SourceCache
	}

	exercises, err := c.fetch(ctx)
	if err != nil {
		log.Warnf("exercise catalog unavailable, serving built-in catalog: %s", err)
		return FallbackCatalog(), SourceFallback
	}
	c.toCache(cacheKey, exercises)
	return exercises, SourceAPI
}

func (c *Client) fetch(ctx context.Context) ([]domain.Exercise, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	url := baseURL + "/exercises?limit=" + strconv.Itoa(c.limit())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create exercise request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", c.Host)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute exercise request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exercise response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exercise request failed with status %d", resp.StatusCode)
	}

	exercises, shape := Normalize(body)
	if shape == ShapeUnrecognized {
		return nil, errUnrecognizedShape
	}
	log.Debugf("exercise catalog: %d items, shape %s", len(exercises), shape)
	return exercises, nil
}

func (c *Client) limit() int {
	if c.Limit <= 0 {
		return defaultLimit
	}
	return c.Limit
}

func (c *Client) fromCache(key []byte) ([]domain.Exercise, bool) {
	if c.Cache == nil {
		return nil, false
	}
	cached, err := c.Cache.Get(key)
	if err != nil {
		return nil, false
	}
	var exercises []domain.Exercise
	if err := json.Unmarshal(cached, &exercises); err != nil {
		log.Errorf("failed to unmarshal cached exercise catalog: %s", err)
		return nil, false
	}
	return exercises, true
}

func (c *Client) toCache(key []byte, exercises []domain.Exercise) {
	if c.Cache == nil {
		return
	}
	ttl := c.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	payload, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercise catalog for cache: %s", err)
		return
	}
	if err := c.Cache.Set(key, payload, int(ttl.Seconds())); err != nil {
		log.Errorf("failed to write exercise catalog cache: %s", err)
	}
}
