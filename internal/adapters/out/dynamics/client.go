// Package dynamics implements the SalesOrderSubmitter port against a
// Dynamics 365 style OData endpoint. The sales order goes out as one
// $batch request carrying the header and every line in a single
// changeset; authentication uses a cached client-credentials token.
package dynamics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/pkg/errs"
)

const (
	defaultTokenEndpoint = "https://login.microsoftonline.com/%s/oauth2/token"
	requestTimeout       = 30 * time.Second
)

// Config carries the Dynamics 365 connection settings.
type Config struct {
	// ResourceURL is the D365 instance base URL, also used as the OAuth
	// resource.
	ResourceURL string

	TenantID     string
	ClientID     string
	ClientSecret string

	// TokenURL overrides the Azure AD token endpoint. Empty means the
	// standard endpoint derived from TenantID.
	TokenURL string
}

func (c Config) tokenEndpoint() string {
	if c.TokenURL != "" {
		return c.TokenURL
	}
	return fmt.Sprintf(defaultTokenEndpoint, c.TenantID)
}

// UOMResolver looks up the ERP unit-of-measure symbol for a SKU.
type UOMResolver interface {
	UOMForSKU(ctx context.Context, sku string) (string, error)
}

// Client submits sales orders to Dynamics 365. It implements
// ports.SalesOrderSubmitter.
type Client struct {
	cfg    Config
	tokens *tokenSource
	http   *http.Client
	uom    UOMResolver
	logger *slog.Logger
}

// NewClient creates a Dynamics 365 client.
func NewClient(cfg Config, uom UOMResolver, logger *slog.Logger) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	return &Client{
		cfg:    cfg,
		tokens: newTokenSource(cfg, httpClient),
		http:   httpClient,
		uom:    uom,
		logger: logger.With("component", "dynamics-client"),
	}
}

// Submit creates the sales order through a $batch request and returns
// the sales order number as the ERP reference.
func (c *Client) Submit(ctx context.Context, aggregate *order.Order, remote *platform.Order) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	payload, err := c.mapSalesOrder(ctx, aggregate, remote)
	if err != nil {
		return "", err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	batchID := "batch_" + uuid.NewString()
	changesetID := "changeset_" + uuid.NewString()
	body := c.renderBatch(payload, batchID, changesetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.ResourceURL+"/data/$batch", strings.NewReader(body))
	if err != nil {
		return "", errs.NewExternalCallError("sales order batch", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/mixed; boundary="+batchID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.NewExternalCallError("sales order batch", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewExternalCallError("sales order batch", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errs.NewExternalCallErrorWithBody("sales order batch", string(respBody),
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	c.logger.Info("sales order submitted",
		"orderNumber", payload.Header.SalesOrderNumber, "lines", len(payload.Lines))
	return payload.Header.SalesOrderNumber, nil
}

// renderBatch assembles the multipart $batch body: one changeset holding
// the header POST followed by one POST per line, CRLF separated.
func (c *Client) renderBatch(payload salesOrderPayload, batchID, changesetID string) string {
	var parts []string
	push := func(lines ...string) { parts = append(parts, lines...) }

	push("--"+batchID,
		"Content-Type: multipart/mixed; boundary="+changesetID,
		"")

	push("--"+changesetID,
		"Content-Type: application/http",
		"Content-Transfer-Encoding: binary",
		"",
		"POST "+c.cfg.ResourceURL+"/data/SalesOrderHeaders HTTP/1.1",
		"Content-Type: application/json; odata=verbose",
		"",
		payload.Header.encode(),
		"")

	for _, line := range payload.Lines {
		line.SalesOrderNumber = payload.Header.SalesOrderNumber
		push("--"+changesetID,
			"Content-Type: application/http",
			"Content-Transfer-Encoding: binary",
			"",
			"POST "+c.cfg.ResourceURL+"/data/SalesOrderLines HTTP/1.1",
			"Content-Type: application/json; odata=verbose",
			"",
			line.encode(),
			"")
	}

	push("--"+changesetID+"--", "--"+batchID+"--")
	return strings.Join(parts, "\r\n")
}
