package backend

import (
	"context"
	"net/http"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

type ProductsClient struct{ Client }

func NewProductsClient(baseURL string) *ProductsClient {
	return &ProductsClient{newClient(baseURL)}
}

func (c *ProductsClient) List(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ProductsClient) UpdateStatus(ctx context.Context, id string, status catalog.ProductStatus) error {
	body := map[string]catalog.ProductStatus{"status": status}
	return c.doJSON(ctx, http.MethodPatch, "/api/products/"+id+"/status", body, nil)
}

func (c *ProductsClient) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}
