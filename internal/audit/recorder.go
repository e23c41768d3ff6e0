package audit

import (
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/kdiallo/shop-admin-gateway/internal/kafka"
)

// Recorder publishes one admin-action event per successful mutation. The
// gateway treats this as fire-and-forget: a broker outage must not block an
// operator action.
type Recorder struct {
	Producer *kafkax.Producer
	Service  string
}

func (r *Recorder) Record(actorID, eventType string, payload any) {
	if r == nil || r.Producer == nil {
		return
	}
	ev := Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     r.Service,
		ActorID:      actorID,
		Payload:      kafkax.MustMarshal(payload),
	}
	r.Producer.Publish(PartitionKey(actorID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
