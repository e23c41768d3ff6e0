package dashboard

import (
	"sync"
	"time"
)

// NotificationTTL is how long a transient notification stays visible.
const NotificationTTL = 4 * time.Second

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

// Notifier is a single-slot transient notification: a new message replaces
// whatever is currently shown, and the slot empties itself after
// NotificationTTL. There is no queue.
type Notifier struct {
	mu      sync.Mutex
	current Notification
	expires time.Time
	now     func() time.Time
}

func NewNotifier() *Notifier { return &Notifier{now: time.Now} }

func (n *Notifier) Success(msg string) { n.show(msg, LevelSuccess) }
func (n *Notifier) Error(msg string)   { n.show(msg, LevelError) }

func (n *Notifier) show(msg string, lvl Level) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = Notification{Message: msg, Level: lvl}
	n.expires = n.now().Add(NotificationTTL)
}

// Current returns the live notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current.Message == "" || n.now().After(n.expires) {
		return Notification{}, false
	}
	return n.current, true
}
