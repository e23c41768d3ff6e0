package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

func TestProductsClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]catalog.Product{
			{ID: "p1", Title: "Rice 25kg", Status: catalog.ProductAvailable},
		})
	}))
	defer srv.Close()

	got, err := NewProductsClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rice 25kg", got[0].Title)
}

func TestClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	err := NewProductsClient(srv.URL).Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClientSurfacesBackendErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := NewOrdersClient(srv.URL).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestPaymentsClientStatusRoutes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]catalog.Payment{})
	}))
	defer srv.Close()

	c := NewPaymentsClient(srv.URL)
	_, err := c.ListByStatus(context.Background(), catalog.PaymentSuccess)
	require.NoError(t, err)
	assert.Equal(t, "/api/payments/status/SUCCESS", gotPath)
}

func TestUsersClientPatchBody(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	role := catalog.RoleSeller
	require.NoError(t, NewUsersClient(srv.URL).Update(context.Background(), "u1", UserPatch{Role: &role}))
	assert.Equal(t, map[string]any{"role": "SELLER"}, body, "nil fields stay out of the patch")
}
