package backend

import (
	"context"
	"net/http"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

// PaymentsClient talks to the payment service. There is no "list all"
// endpoint; listings are partitioned by status and the dashboard merges
// them back together.
type PaymentsClient struct{ Client }

func NewPaymentsClient(baseURL string) *PaymentsClient {
	return &PaymentsClient{newClient(baseURL)}
}

func (c *PaymentsClient) ListByStatus(ctx context.Context, status catalog.PaymentStatus) ([]catalog.Payment, error) {
	var out []catalog.Payment
	if err := c.doJSON(ctx, http.MethodGet, "/api/payments/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PaymentsClient) Stats(ctx context.Context) (*catalog.PaymentStats, error) {
	var out catalog.PaymentStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/payments/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PaymentsClient) Confirm(ctx context.Context, id, transactionReference string) error {
	body := map[string]string{"transactionReference": transactionReference}
	return c.doJSON(ctx, http.MethodPost, "/api/payments/"+id+"/confirm", body, nil)
}

func (c *PaymentsClient) Fail(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.doJSON(ctx, http.MethodPost, "/api/payments/"+id+"/fail", body, nil)
}
