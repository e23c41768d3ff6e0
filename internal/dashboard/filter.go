package dashboard

import (
	"strings"
	"time"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

// DateBucket is a lower bound on createdAt.
type DateBucket string

const (
	BucketAll   DateBucket = "all"
	BucketToday DateBucket = "today"
	BucketWeek  DateBucket = "week"
	BucketMonth DateBucket = "month"
)

// ParseBucket maps a query parameter to a bucket; anything unknown or empty
// means no date filtering.
func ParseBucket(s string) DateBucket {
	switch DateBucket(strings.ToLower(s)) {
	case BucketToday:
		return BucketToday
	case BucketWeek:
		return BucketWeek
	case BucketMonth:
		return BucketMonth
	}
	return BucketAll
}

// cutoff returns the inclusive lower bound for the bucket. ok is false for
// BucketAll, which applies no bound at all.
func (b DateBucket) cutoff(now time.Time) (time.Time, bool) {
	switch b {
	case BucketToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case BucketWeek:
		return now.AddDate(0, 0, -7), true
	case BucketMonth:
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

func (b DateBucket) matches(t catalog.Timestamp, now time.Time) bool {
	lo, ok := b.cutoff(now)
	if !ok {
		return true
	}
	// zero timestamp (absent or unparseable createdAt) matches ALL only
	if t.IsZero() {
		return false
	}
	return !t.Before(lo)
}

// Filter is the operator's current view selection. All three predicates
// combine with AND; empty query and empty status match everything. Order of
// the source collection is preserved.
type Filter struct {
	Query  string
	Status string
	Date   DateBucket
}

func (f Filter) matchQuery(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f Filter) matchStatus(status string) bool {
	return f.Status == "" || f.Status == status
}

// Products filters by title/category text and product status. Products have
// no date view in the console, so Date is ignored here.
func (f Filter) Products(items []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(items))
	for _, p := range items {
		if f.matchQuery(p.Title, p.Category) && f.matchStatus(string(p.Status)) {
			out = append(out, p)
		}
	}
	return out
}

// Users filters by email/first/last name text, with Status holding a role.
func (f Filter) Users(items []catalog.User) []catalog.User {
	out := make([]catalog.User, 0, len(items))
	for _, u := range items {
		if f.matchQuery(u.Email, u.FirstName, u.LastName) && f.matchStatus(string(u.Role)) {
			out = append(out, u)
		}
	}
	return out
}

func (f Filter) Orders(items []catalog.Order, now time.Time) []catalog.Order {
	out := make([]catalog.Order, 0, len(items))
	for _, o := range items {
		if f.matchQuery(o.ID, o.UserID) && f.matchStatus(string(o.OrderStatus)) && f.Date.matches(o.CreatedAt, now) {
			out = append(out, o)
		}
	}
	return out
}

func (f Filter) Payments(items []catalog.Payment, now time.Time) []catalog.Payment {
	out := make([]catalog.Payment, 0, len(items))
	for _, p := range items {
		if f.matchQuery(p.ID, p.OrderID) && f.matchStatus(string(p.Status)) && f.Date.matches(p.CreatedAt, now) {
			out = append(out, p)
		}
	}
	return out
}
