package redisx

import "time"

const (
	// Delete confirmation token: intent:delete:{kind}:{id} -> token
	KeyDeleteIntent = "intent:delete:%s:%s"

	// Cached overview stats for the storefront widget
	KeyOverviewStats = "admin:overview:stats"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDeleteIntent  = 2 * time.Minute
	TTLOverviewStats = 1 * time.Minute
	TTLDedup         = 48 * time.Hour
)
