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

func TestSalesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/sales", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "prod-1", r.URL.Query().Get("product_id"))

		response := gumroad.SalesResponse{
			Success: true,
			Sales: []gumroad.Sale{
				{ID: "sale-1", ProductID: "prod-1", Email: "buyer@example.com", Price: 100},
			},
			NextPageURL: "/v2/sales?page=2",
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	params := gumroad.NewQueryParams().WithProductID("prod-1")

	page, err := client.Sales().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Sales, 1)
	assert.Equal(t, "sale-1", page.Sales[0].ID)
	assert.Equal(t, "/v2/sales?page=2", page.NextPageURL)
}

func TestSalesClient_ListAll_MultiplePages(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		response := gumroad.SalesResponse{Success: true}

		switch r.URL.Query().Get("page") {
		case "1":
			response.Sales = []gumroad.Sale{
				{ID: "sale-1", OrderNumber: 1},
				{ID: "sale-2", OrderNumber: 2},
			}
			response.NextPageURL = "/v2/sales?page=2"
		case "2":
			response.Sales = []gumroad.Sale{
				{ID: "sale-3", OrderNumber: 3},
			}
		default:
			t.Errorf("unexpected page parameter %q", r.URL.Query().Get("page"))
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	sales, err := client.Sales().ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "sale-1", sales[0].ID)
	assert.Equal(t, "sale-2", sales[1].ID)
	assert.Equal(t, "sale-3", sales[2].ID)
	assert.Equal(t, 2, requests)
}

func TestSalesClient_ListAll_SinglePage(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		response := gumroad.SalesResponse{
			Success: true,
			Sales:   []gumroad.Sale{{ID: "sale-1"}},
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	sales, err := client.Sales().ListAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, 1, requests)
}

func TestSalesClient_ListAll_ErrorDiscardsItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			response := gumroad.SalesResponse{
				Success:     true,
				Sales:       []gumroad.Sale{{ID: "sale-1"}},
				NextPageURL: "/v2/sales?page=2",
			}

			json.NewEncoder(w).Encode(response)

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Something went wrong.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	sales, err := client.Sales().ListAll(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, sales)
}

func TestSalesClient_List_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "The access token is invalid.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Sales().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, gumroad.IsUnauthorized(err))
}

func TestSalesClient_ListAll_PreservesQueryFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "prod-1", r.URL.Query().Get("product_id"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("after"))

		response := gumroad.SalesResponse{
			Success: true,
			Sales:   []gumroad.Sale{{ID: "sale-1"}},
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	params := gumroad.NewQueryParams().WithProductID("prod-1").WithAfter("2026-01-01")

	sales, err := client.Sales().ListAll(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
