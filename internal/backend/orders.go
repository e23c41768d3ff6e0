package backend

import (
	"context"
	"net/http"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

type OrdersClient struct{ Client }

func NewOrdersClient(baseURL string) *OrdersClient {
	return &OrdersClient{newClient(baseURL)}
}

func (c *OrdersClient) List(ctx context.Context) ([]catalog.Order, error) {
	var out []catalog.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *OrdersClient) UpdateStatus(ctx context.Context, id string, status catalog.OrderStatus) error {
	body := map[string]catalog.OrderStatus{"orderStatus": status}
	return c.doJSON(ctx, http.MethodPut, "/api/orders/"+id+"/status", body, nil)
}
