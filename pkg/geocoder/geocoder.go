package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoResults = errors.New("address could not be geocoded")

type Location struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	Street           string  `json:"street"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zipcode          string  `json:"zipcode"`
	Country          string  `json:"country"`
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// MapQuest talks to the MapQuest geocoding v1 address endpoint.
type MapQuest struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewMapQuest(baseURL, apiKey string) *MapQuest {
	return &MapQuest{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type mapQuestResponse struct {
	Results []struct {
		Locations []struct {
			Street     string `json:"street"`
			AdminArea5 string `json:"adminArea5"`
			AdminArea3 string `json:"adminArea3"`
			AdminArea1 string `json:"adminArea1"`
			PostalCode string `json:"postalCode"`
			LatLng     struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

func (m *MapQuest) Geocode(ctx context.Context, address string) (*Location, error) {
	q := url.Values{}
	q.Set("key", m.apiKey)
	q.Set("location", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body mapQuestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(body.Results) == 0 || len(body.Results[0].Locations) == 0 {
		return nil, ErrNoResults
	}

	loc := body.Results[0].Locations[0]
	parts := make([]string, 0, 4)
	for _, p := range []string{loc.Street, loc.AdminArea5, strings.TrimSpace(loc.AdminArea3 + " " + loc.PostalCode), loc.AdminArea1} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return &Location{
		Latitude:         loc.LatLng.Lat,
		Longitude:        loc.LatLng.Lng,
		FormattedAddress: strings.Join(parts, ", "),
		Street:           loc.Street,
		City:             loc.AdminArea5,
		State:            loc.AdminArea3,
		Zipcode:          loc.PostalCode,
		Country:          loc.AdminArea1,
	}, nil
}

// Cached keeps geocoder answers in redis. Cache failures fall through to the
// wrapped geocoder.
type Cached struct {
	next  Geocoder
	redis *redis.Client
	ttl   time.Duration
}

func NewCached(next Geocoder, redisClient *redis.Client, ttl time.Duration) *Cached {
	return &Cached{next: next, redis: redisClient, ttl: ttl}
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (c *Cached) Geocode(ctx context.Context, address string) (*Location, error) {
	if c.redis == nil {
		return c.next.Geocode(ctx, address)
	}

	key := cacheKey(address)
	if raw, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var loc Location
		if json.Unmarshal(raw, &loc) == nil {
			return &loc, nil
		}
	}

	loc, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(loc); err == nil {
		c.redis.Set(ctx, key, raw, c.ttl)
	}
	return loc, nil
}
