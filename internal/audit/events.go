package audit

import (
	"encoding/json"
	"time"

	kafkax "github.com/kdiallo/shop-admin-gateway/internal/kafka"
)

// Admin-action event types published by the gateway.
const (
	EventProductStatusUpdated = "ProductStatusUpdated"
	EventProductDeleted       = "ProductDeleted"
	EventUserRoleUpdated      = "UserRoleUpdated"
	EventUserDeleted          = "UserDeleted"
	EventOrderStatusUpdated   = "OrderStatusUpdated"
	EventPaymentConfirmed     = "PaymentConfirmed"
	EventPaymentFailed        = "PaymentFailed"
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	ActorID      string          `json:"actor_id"` // admin performing the action
	Payload      json.RawMessage `json:"payload"`
}

// ---- Payloads per event type ----

type StatusUpdatedPayload struct {
	EntityID  string `json:"entity_id"`
	NewStatus string `json:"new_status"`
}

type DeletedPayload struct {
	EntityID string `json:"entity_id"`
}

type PaymentConfirmedPayload struct {
	PaymentID            string `json:"payment_id"`
	TransactionReference string `json:"transaction_reference"`
}

type PaymentFailedPayload struct {
	PaymentID string `json:"payment_id"`
	Reason    string `json:"reason"`
}

// EntityID pulls the acted-on entity out of a payload so the audit trail
// can be queried per entity. Unknown event types and undecodable payloads
// yield "".
func EntityID(eventType string, payload json.RawMessage) string {
	switch eventType {
	case EventProductStatusUpdated, EventUserRoleUpdated, EventOrderStatusUpdated:
		if p, err := kafkax.UnwrapPayload[StatusUpdatedPayload](payload); err == nil {
			return p.EntityID
		}
	case EventProductDeleted, EventUserDeleted:
		if p, err := kafkax.UnwrapPayload[DeletedPayload](payload); err == nil {
			return p.EntityID
		}
	case EventPaymentConfirmed:
		if p, err := kafkax.UnwrapPayload[PaymentConfirmedPayload](payload); err == nil {
			return p.PaymentID
		}
	case EventPaymentFailed:
		if p, err := kafkax.UnwrapPayload[PaymentFailedPayload](payload); err == nil {
			return p.PaymentID
		}
	}
	return ""
}
