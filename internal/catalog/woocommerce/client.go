// Package woocommerce is the thin REST adapter to the catalog: paged product
// listing and per-product updates. Credentials ride as query parameters the
// way the WooCommerce v3 API expects over HTTPS.
package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"catalog_sync/internal/domain"
)

type Config struct {
	BaseURL  string
	Key      string
	Secret   string
	Timeout  time.Duration
	PageSize int
}

type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	key        string
	secret     string
	pageSize   int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &Client{
		httpClient: rc,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/wp-json/wc/v3",
		key:        cfg.Key,
		secret:     cfg.Secret,
		pageSize:   pageSize,
		logger:     logger,
	}
}

type wcImage struct {
	Src string `json:"src"`
}

type wcProduct struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	Images      []wcImage `json:"images"`
}

// Products pages through the full product list.
func (c *Client) Products(ctx context.Context) ([]domain.CatalogRecord, error) {
	var out []domain.CatalogRecord
	for page := 1; ; page++ {
		chunk, err := c.productsPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetch products page %d: %w", page, err)
		}
		for _, p := range chunk {
			out = append(out, domain.CatalogRecord{
				ID:          strconv.FormatInt(p.ID, 10),
				Name:        p.Name,
				SKU:         p.SKU,
				Description: p.Description,
				ImagesCount: len(p.Images),
			})
		}
		if len(chunk) < c.pageSize {
			break
		}
	}
	c.logger.Info("fetched catalog products", "count", len(out))
	return out, nil
}

func (c *Client) productsPage(ctx context.Context, page int) ([]wcProduct, error) {
	u := c.endpoint("products", url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(c.pageSize)},
	})

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var products []wcProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return products, nil
}

// Update writes the payload to one product. An empty payload is the caller's
// bug to avoid; the catalog treats omitted keys as untouched.
func (c *Client) Update(ctx context.Context, productID string, upd domain.ProductUpdate) error {
	body, err := json.Marshal(upd)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	u := c.endpoint("products/"+productID, nil)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("update rejected: status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("consumer_key", c.key)
	params.Set("consumer_secret", c.secret)
	return c.baseURL + "/" + path + "?" + params.Encode()
}
