package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/sony/gobreaker/v2"
)

const (
	gsmarenaCacheSize = 512
	gsmarenaCacheTTL  = time.Hour
	maxResponseBytes  = 4 << 20
)

var errUpstream = errors.New("upstream error")

type GSMArenaSearchResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"img"`
}

type gsmarenaPhone struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Image    string `json:"img"`
	Released string `json:"released"`
	Status   string `json:"status"`
	URL      string `json:"url"`
	Specs    struct {
		Display string `json:"display"`
		Camera  string `json:"camera"`
		Battery string `json:"battery"`
		Storage string `json:"storage"`
		RAM     string `json:"ram"`
		Chipset string `json:"chipset"`
		OS      string `json:"os"`
	} `json:"specs"`
	Features []string `json:"features"`
	Colors   []string `json:"colors"`
}

// GSMArenaClient talks to a GSMArena-style JSON API. Responses are cached,
// transient failures are retried and a circuit breaker stops hammering the
// API while it is down.
type GSMArenaClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	cache   *cache.LRUCache[[]byte]
	breaker *gobreaker.CircuitBreaker[[]byte]
	retry   utils.RetryConfig
}

func NewGSMArenaClient(logger *slog.Logger, baseURL string, timeout time.Duration) *GSMArenaClient {
	return &GSMArenaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("source", "gsmarena")),
		cache:   cache.NewLRUCache[[]byte](gsmarenaCacheSize, gsmarenaCacheTTL),
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "gsmarena",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, entities.ErrPhoneNotFound)
			},
		}),
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2,
		},
	}
}

func (c *GSMArenaClient) Search(ctx context.Context, query string) ([]GSMArenaSearchResult, error) {
	body, err := c.get(ctx, "/search?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	var results []GSMArenaSearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return results, nil
}

func (c *GSMArenaClient) Phone(ctx context.Context, id string) (entities.Phone, error) {
	body, err := c.get(ctx, "/phones/"+url.PathEscape(id))
	if err != nil {
		return entities.Phone{}, err
	}

	var p gsmarenaPhone
	if err := json.Unmarshal(body, &p); err != nil {
		return entities.Phone{}, fmt.Errorf("failed to decode phone %s: %w", id, err)
	}
	if p.Name == "" {
		return entities.Phone{}, fmt.Errorf("%w: %s", entities.ErrPhoneNotFound, id)
	}
	return p.toEntity(), nil
}

func (c *GSMArenaClient) get(ctx context.Context, path string) ([]byte, error) {
	if body, ok := c.cache.Get(path); ok {
		return body, nil
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		var body []byte
		err := utils.Retry(ctx, c.retry, func() error {
			var err error
			body, err = c.fetch(ctx, path)
			return err
		}, entities.ErrPhoneNotFound, context.Canceled, context.DeadlineExceeded)
		return body, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", entities.ErrSourceUnavailable, err)
	}
	if err != nil {
		return nil, err
	}

	c.cache.Set(path, body)
	return body, nil
}

func (c *GSMArenaClient) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", errUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", entities.ErrPhoneNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s returned %d", errUpstream, path, resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}

func (p gsmarenaPhone) toEntity() entities.Phone {
	brand := p.Brand
	if brand == "" {
		brand, _, _ = strings.Cut(p.Name, " ")
	}
	status := strings.ToLower(p.Status)
	return entities.Phone{
		ID:       PhoneID(brand, p.Name),
		Name:     p.Name,
		Brand:    brand,
		ImageURL: p.Image,
		Specs: entities.PhoneSpecs{
			Display:   p.Specs.Display,
			Camera:    p.Specs.Camera,
			Battery:   p.Specs.Battery,
			Storage:   p.Specs.Storage,
			RAM:       p.Specs.RAM,
			Processor: p.Specs.Chipset,
			OS:        p.Specs.OS,
		},
		Features:    p.Features,
		ReleaseDate: p.Released,
		Colors:      p.Colors,
		Available:   status == "" || strings.HasPrefix(status, "available"),
		SourceURL:   p.URL,
	}
}
