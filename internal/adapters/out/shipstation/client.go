// Package shipstation implements the PlatformClient port against the
// ShipStation APIs: the v1 API (basic auth) for orders and tags, the v2
// API (key header) for the product catalog and label purchase.
package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/pkg/errs"
)

const (
	defaultV1BaseURL = "https://ssapi.shipstation.com"
	defaultV2BaseURL = "https://api.shipstation.com"

	defaultPageSize = 100
	requestTimeout  = 30 * time.Second
)

// Config carries the ShipStation credentials and endpoints. The v1 API
// authenticates with the key/secret pair, the v2 API with a single key.
type Config struct {
	V1BaseURL string
	V2BaseURL string
	APIKey    string
	APISecret string
	V2APIKey  string
	PageSize  int
}

// Client talks to ShipStation. It implements ports.PlatformClient.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a ShipStation client. Empty base URLs fall back to
// the production endpoints; a non-positive page size falls back to 100.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.V1BaseURL == "" {
		cfg.V1BaseURL = defaultV1BaseURL
	}
	if cfg.V2BaseURL == "" {
		cfg.V2BaseURL = defaultV2BaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: requestTimeout},
		logger: logger.With("component", "shipstation-client"),
	}
}

type orderListResponse struct {
	Orders []platform.Order `json:"orders"`
}

// FetchAwaitingShipment lists the orders currently awaiting shipment.
func (c *Client) FetchAwaitingShipment(ctx context.Context) ([]platform.Order, error) {
	query := url.Values{
		"orderStatus": []string{"awaiting_shipment"},
		"pageSize":    []string{strconv.Itoa(c.cfg.PageSize)},
	}

	var response orderListResponse
	if err := c.getV1(ctx, "list awaiting shipment", "/orders?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return response.Orders, nil
}

// FetchOrder retrieves one order's authoritative detail.
func (c *Client) FetchOrder(ctx context.Context, id int64) (*platform.Order, error) {
	var response platform.Order
	operation := fmt.Sprintf("fetch order %d", id)
	if err := c.getV1(ctx, operation, "/orders/"+strconv.FormatInt(id, 10), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FetchTags retrieves the account's tag vocabulary.
func (c *Client) FetchTags(ctx context.Context) ([]platform.Tag, error) {
	var response []platform.Tag
	if err := c.getV1(ctx, "list tags", "/accounts/listtags", &response); err != nil {
		return nil, err
	}
	return response, nil
}

// FetchProducts retrieves one page of the v2 product catalog.
func (c *Client) FetchProducts(ctx context.Context, page int) (*platform.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	query := url.Values{
		"page":      []string{strconv.Itoa(page)},
		"page_size": []string{strconv.Itoa(c.cfg.PageSize)},
	}

	var response platform.ProductPage
	operation := fmt.Sprintf("list products page %d", page)
	if err := c.getV2(ctx, operation, "/v2/products?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateLabel purchases a label through the v2 API and returns the
// download URLs found in the response.
func (c *Client) CreateLabel(ctx context.Context, request shipment.LabelRequest) ([]string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errs.NewExternalCallError("create label", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.V2BaseURL+"/v2/labels", bytes.NewReader(body))
	if err != nil {
		return nil, errs.NewExternalCallError("create label", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorizeV2(req)

	var response labelResponse
	if err := c.do(req, "create label", &response); err != nil {
		return nil, err
	}

	urls := extractLabelURLs(&response)
	c.logger.Info("label purchased", "urls", len(urls))
	return urls, nil
}

func (c *Client) getV1(ctx context.Context, operation, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.V1BaseURL+path, nil)
	if err != nil {
		return errs.NewExternalCallError(operation, err)
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)
	return c.do(req, operation, target)
}

func (c *Client) getV2(ctx context.Context, operation, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.V2BaseURL+path, nil)
	if err != nil {
		return errs.NewExternalCallError(operation, err)
	}
	c.authorizeV2(req)
	return c.do(req, operation, target)
}

func (c *Client) authorizeV2(req *http.Request) {
	req.Header.Set("API-Key", c.cfg.V2APIKey)
}

// do executes the request and decodes the JSON body into target. Non-2xx
// responses keep the upstream body on the error for diagnostics.
func (c *Client) do(req *http.Request, operation string, target any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewExternalCallError(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewExternalCallError(operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewExternalCallErrorWithBody(operation, string(body),
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if target == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errs.NewExternalCallError(operation, err)
	}
	return nil
}
