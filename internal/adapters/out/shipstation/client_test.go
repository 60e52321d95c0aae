package shipstation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/pkg/errs"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		V1BaseURL: server.URL,
		V2BaseURL: server.URL,
		APIKey:    "key",
		APISecret: "secret",
		V2APIKey:  "v2-key",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchAwaitingShipment(t *testing.T) {
	var captured *http.Request
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"orders":[
			{"orderId":11,"orderNumber":"ORD-11"},
			{"orderId":12,"orderNumber":"ORD-12"}
		]}`))
	}))

	orders, err := client.FetchAwaitingShipment(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(11), orders[0].OrderID)
	assert.Equal(t, "ORD-12", orders[1].OrderNumber)

	require.NotNil(t, captured)
	assert.Equal(t, "/orders", captured.URL.Path)
	assert.Equal(t, "awaiting_shipment", captured.URL.Query().Get("orderStatus"))
	assert.Equal(t, "100", captured.URL.Query().Get("pageSize"))

	user, pass, ok := captured.BasicAuth()
	require.True(t, ok, "v1 calls must carry basic auth")
	assert.Equal(t, "key", user)
	assert.Equal(t, "secret", pass)
}

func TestFetchOrder(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"orderId":42,"orderNumber":"ORD-42","serviceCode":"usps_priority_mail"}`))
	}))

	order, err := client.FetchOrder(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), order.OrderID)
	assert.Equal(t, "usps_priority_mail", order.ServiceCode)
}

func TestFetchTags(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/listtags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"tagId":1,"name":"Replacement"},{"tagId":2,"name":"Pallet"}]`))
	}))

	tags, err := client.FetchTags(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Pallet", tags[1].Name)
}

func TestFetchProducts(t *testing.T) {
	var captured *http.Request
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"products":[{"product_id":500,"sku":"WIDGET-1"}],"pages":3}`))
	}))

	page, err := client.FetchProducts(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "WIDGET-1", page.Products[0].SKU)

	require.NotNil(t, captured)
	assert.Equal(t, "/v2/products", captured.URL.Path)
	assert.Equal(t, "2", captured.URL.Query().Get("page"))
	assert.Equal(t, "v2-key", captured.Header.Get("API-Key"))
	_, _, hasBasicAuth := captured.BasicAuth()
	assert.False(t, hasBasicAuth, "v2 calls must not carry basic auth")
}

func TestCreateLabel(t *testing.T) {
	var payload map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/labels", r.URL.Path)
		assert.Equal(t, "v2-key", r.Header.Get("API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		_, _ = w.Write([]byte(`{"labels":[{"label_download":{"href":"https://x/1.pdf"}}]}`))
	}))

	request := shipment.LabelRequest{Shipment: shipment.Shipment{ServiceCode: "ups_ground"}}
	urls, err := client.CreateLabel(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x/1.pdf"}, urls)

	sent, ok := payload["shipment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ups_ground", sent["service_code"])
}

func TestErrorResponsePreservesBody(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid shipment"}`))
	}))

	_, err := client.CreateLabel(context.Background(), shipment.LabelRequest{})

	require.Error(t, err)
	var external *errs.ExternalCallError
	require.ErrorAs(t, err, &external)
	assert.Contains(t, err.Error(), "invalid shipment")
}

func TestMalformedResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	_, err := client.FetchTags(context.Background())

	var external *errs.ExternalCallError
	require.ErrorAs(t, err, &external)
}

func TestConfigDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k", APISecret: "s"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, defaultV1BaseURL, client.cfg.V1BaseURL)
	assert.Equal(t, defaultV2BaseURL, client.cfg.V2BaseURL)
	assert.Equal(t, defaultPageSize, client.cfg.PageSize)
}
