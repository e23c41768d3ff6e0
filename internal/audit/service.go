package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/kdiallo/shop-admin-gateway/internal/redisx"
)

// Service consumes admin.action events and persists the audit trail.
type Service struct {
	Repo        *Repo
	Redis       *redis.Client
	ServiceName string
}

// HandleAdminAction is the consumer handler. Inserts are idempotent (unique
// event_id), the Redis dedup just short-circuits reprocessing.
func (s *Service) HandleAdminAction(ctx context.Context, m kafkago.Message) error {
	var env Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventID == "" {
		return nil // not ours, skip
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}

	err := s.Repo.Insert(ctx, Entry{
		EventID:    env.EventID,
		EventType:  env.EventType,
		ActorID:    env.ActorID,
		EntityID:   EntityID(env.EventType, env.Payload),
		Payload:    env.Payload,
		OccurredAt: env.OccurredAt,
	})
	if err != nil {
		return err
	}

	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	return nil
}
