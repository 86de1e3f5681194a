package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := New(&gumroad.Config{Host: server.URL, Token: "test-token"})
	require.NoError(t, err)

	return client
}

func TestProductsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/products", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		response := gumroad.ProductsResponse{
			Success: true,
			Products: []gumroad.Product{
				{ID: "prod-1", Name: "Pencil Icon Set", Price: 100, Currency: "usd", Published: true},
				{ID: "prod-2", Name: "Brush Pack", Price: 250, Currency: "usd"},
			},
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	products, err := client.Products().List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "prod-1", products[0].ID)
	assert.Equal(t, "Pencil Icon Set", products[0].Name)
	assert.True(t, products[0].Published)
}

func TestProductsClient_ListAll_SinglePage(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		response := gumroad.ProductsResponse{
			Success:  true,
			Products: []gumroad.Product{{ID: "prod-1", Name: "Pencil Icon Set"}},
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	products, err := client.Products().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, requests)
}

func TestProductsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/products/prod-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := gumroad.ProductResponse{
			Success: true,
			Product: gumroad.Product{ID: "prod-1", Name: "Pencil Icon Set", SalesCount: 42},
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	product, err := client.Products().Get(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, int64(42), product.SalesCount)
}

func TestProductsClient_Get_EmptyID(t *testing.T) {
	client, err := New(&gumroad.Config{Host: "api.gumroad.com", Token: "test-token"})
	require.NoError(t, err)

	_, err = client.Products().Get(context.Background(), "")
	require.ErrorIs(t, err, gumroad.ErrProductIDRequired)
}

func TestProductsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "The product was not found.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Products().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, gumroad.IsNotFound(err))
}

func TestProductsClient_List_SuccessFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Unable to retrieve products.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Products().List(context.Background())
	require.Error(t, err)

	apiErr := &gumroad.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unable to retrieve products.", apiErr.Message)
}

func TestProductsClient_List_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": tru`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Products().List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "parsing products list response")
}
