package audit

const TopicAdminAction = "admin.action"

// Partition key = actor_id, so one admin's actions keep their order.
func PartitionKey(actorID string) []byte { return []byte(actorID) }
