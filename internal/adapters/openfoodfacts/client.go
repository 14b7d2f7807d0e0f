// internal/adapters/openfoodfacts/client.go
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const (
	// DefaultBaseURL is the public Open Food Facts instance
	DefaultBaseURL = "https://world.openfoodfacts.org"

	categoryLangPrefix = "pl:"
	maxBodyBytes       = 2 << 20
)

// Config configures the client
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	UserAgent     string
}

// productResponse is the subset of the v0 product payload we read
type productResponse struct {
	Status        int    `json:"status"`
	StatusVerbose string `json:"status_verbose"`
	Product       struct {
		ProductName    string   `json:"product_name"`
		CategoriesTags []string `json:"categories_tags"`
	} `json:"product"`
}

// Client looks products up by barcode in Open Food Facts
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ ports.ProductLookup = (*Client)(nil)

// NewClient creates a new lookup client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "shoplist-be/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		logger:     logger.With(slog.String("adapter", "openfoodfacts")),
	}
}

// Lookup fetches the product for barcode. A product the directory does not
// know is reported as domain.ErrProductNotFound; any transport or HTTP
// failure is returned as a connection error.
func (c *Client) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("lookup throttled: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "product lookup",
		slog.String("barcode", barcode),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration_ms", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("product api error: status %d", resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Status != 1 {
		return nil, fmt.Errorf("barcode %s: %w", barcode, domain.ErrProductNotFound)
	}

	name := strings.TrimSpace(payload.Product.ProductName)
	if name == "" {
		name = domain.FallbackProductName(barcode)
	}

	return &domain.Product{
		Barcode:  barcode,
		Name:     name,
		Category: polishCategory(payload.Product.CategoriesTags),
		Found:    true,
	}, nil
}

// polishCategory returns the first pl: tag without its prefix
func polishCategory(tags []string) string {
	for _, tag := range tags {
		if strings.HasPrefix(tag, categoryLangPrefix) {
			return strings.TrimPrefix(tag, categoryLangPrefix)
		}
	}
	return ""
}
