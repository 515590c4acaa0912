// Package edamam searches the Edamam food database for foods and their macros.
package edamam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alcyxob/fittrack/internal/domain"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL  = "https://api.edamam.com"
	parserPath      = "/api/food-database/v2/parser"
	defaultCacheTTL = 10 * time.Minute
)

// ErrRateLimited is returned when the API answers 429 Too Many Requests.
var ErrRateLimited = errors.New("edamam: rate limit exceeded")

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("edamam request failed with status %d", e.StatusCode)
}

type Client struct {
	AppID      string
	AppKey     string
	BaseURL    string
	HTTPClient *http.Client
	// Cache is optional. Successful searches are stored for CacheTTL.
	Cache    *freecache.Cache
	CacheTTL time.Duration
}

// Search returns the food hints for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.FoodHint, error) {
	cacheKey := []byte("search::" + strings.ToLower(strings.TrimSpace(query)))
	if hints, ok := c.fromCache(cacheKey); ok {
		log.Tracef("food search %q served from cache", query)
		return hints, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	params := url.Values{}
	params.Set("app_id", c.AppID)
	params.Set("app_key", c.AppKey)
	params.Set("ingr", query)
	params.Set("nutrition_type", "logging")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+parserPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create edamam request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute edamam request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read edamam response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var parsed parserResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode edamam response: %w", err)
	}

	hints := make([]domain.FoodHint, 0, len(parsed.Hints))
	for _, h := range parsed.Hints {
		hints = append(hints, domain.FoodHint{
			FoodID:    h.Food.FoodID,
			Label:     h.Food.Label,
			Image:     h.Food.Image,
			Nutrients: h.Food.Nutrients.toDomain(),
		})
	}

	c.toCache(cacheKey, hints)
	return hints, nil
}

func (c *Client) fromCache(key []byte) ([]domain.FoodHint, bool) {
	if c.Cache == nil {
		return nil, false
	}
	cached, err := c.Cache.Get(key)
	if err != nil {
		return nil, false
	}
	var hints []domain.FoodHint
	if err := json.Unmarshal(cached, &hints); err != nil {
		log.Errorf("failed to unmarshal cached food search %s: %s", key, err)
		return nil, false
	}
	return hints, true
}

func (c *Client) toCache(key []byte, hints []domain.FoodHint) {
	if c.Cache == nil {
		return
	}
	ttl := c.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	payload, err := json.Marshal(hints)
	if err != nil {
		log.Errorf("failed to marshal food search for cache: %s", err)
		return
	}
	if err := c.Cache.Set(key, payload, int(ttl.Seconds())); err != nil {
		log.Errorf("failed to write food search cache %s: %s", key, err)
	}
}

type parserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string       `json:"foodId"`
			Label     string       `json:"label"`
			Image     string       `json:"image"`
			Nutrients rawNutrients `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// rawNutrients keeps values undecoded so that one malformed value does not
// fail the whole response.
type rawNutrients map[string]json.RawMessage

func (n rawNutrients) toDomain() domain.Nutrients {
	return domain.Nutrients{
		Calories: n.number("ENERC_KCAL"),
		Protein:  n.number("PROCNT"),
		Fat:      n.number("FAT"),
		Carbs:    n.number("CHOCDF"),
	}
}

func (n rawNutrients) number(key string) *float64 {
	raw, ok := n[key]
	if !ok {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}
