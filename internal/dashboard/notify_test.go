package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierSingleSlotReplacement(t *testing.T) {
	n := NewNotifier()

	n.Success("Product deleted")
	n.Error("Failed to update order status")

	got, ok := n.Current()
	assert.True(t, ok)
	assert.Equal(t, Notification{Message: "Failed to update order status", Level: LevelError}, got,
		"a new notification replaces the current one, no queueing")
}

func TestNotifierAutoDismiss(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	n := NewNotifier()
	n.now = func() time.Time { return now }

	n.Success("User role updated")

	_, ok := n.Current()
	assert.True(t, ok)

	now = now.Add(NotificationTTL + time.Millisecond)
	_, ok = n.Current()
	assert.False(t, ok, "notification dismisses itself after the TTL")
}

func TestNotifierEmpty(t *testing.T) {
	_, ok := NewNotifier().Current()
	assert.False(t, ok)
}
