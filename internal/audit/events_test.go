package audit

import (
	"encoding/json"
	"testing"

	kafkax "github.com/kdiallo/shop-admin-gateway/internal/kafka"
)

func TestEntityIDPerEventType(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   any
		want      string
	}{
		{"product status", EventProductStatusUpdated, StatusUpdatedPayload{EntityID: "p1", NewStatus: "DISABLED"}, "p1"},
		{"user role", EventUserRoleUpdated, StatusUpdatedPayload{EntityID: "u2", NewStatus: "SELLER"}, "u2"},
		{"order status", EventOrderStatusUpdated, StatusUpdatedPayload{EntityID: "ord-1", NewStatus: "DELIVERED"}, "ord-1"},
		{"product deleted", EventProductDeleted, DeletedPayload{EntityID: "p9"}, "p9"},
		{"user deleted", EventUserDeleted, DeletedPayload{EntityID: "u9"}, "u9"},
		{"payment confirmed", EventPaymentConfirmed, PaymentConfirmedPayload{PaymentID: "pay-1", TransactionReference: "ADMIN-1"}, "pay-1"},
		{"payment failed", EventPaymentFailed, PaymentFailedPayload{PaymentID: "pay-2", Reason: "rejected"}, "pay-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EntityID(tt.eventType, kafkax.MustMarshal(tt.payload))
			if got != tt.want {
				t.Errorf("EntityID(%s) = %q, want %q", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestEntityIDDegradesToEmpty(t *testing.T) {
	if got := EntityID("SomethingElse", kafkax.MustMarshal(DeletedPayload{EntityID: "x"})); got != "" {
		t.Errorf("unknown event type yields %q, want empty", got)
	}
	if got := EntityID(EventProductDeleted, json.RawMessage(`not json`)); got != "" {
		t.Errorf("undecodable payload yields %q, want empty", got)
	}
}
