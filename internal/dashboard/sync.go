package dashboard

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
	"github.com/kdiallo/shop-admin-gateway/internal/redisx"
)

// Backend contracts consumed by the controller; satisfied by the clients in
// internal/backend and by fakes in tests.

type ProductSource interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

type UserSource interface {
	List(ctx context.Context) ([]catalog.User, error)
}

type OrderSource interface {
	List(ctx context.Context) ([]catalog.Order, error)
}

type PaymentSource interface {
	ListByStatus(ctx context.Context, status catalog.PaymentStatus) ([]catalog.Payment, error)
	Stats(ctx context.Context) (*catalog.PaymentStats, error)
}

// Controller fills the snapshot store from the backend services. A failed
// fetch never aborts the sibling fetches: the collection falls back to
// empty (or nil stats), the error is logged, and the load goes on.
type Controller struct {
	Products ProductSource
	Users    UserSource
	Orders   OrderSource
	Payments PaymentSource

	Store    *Store
	Notifier *Notifier
	Redis    *redis.Client // optional overview cache
}

// LoadAll refreshes all four collections concurrently. Per-collection
// failures are absorbed by the individual loaders; only a failure of the
// orchestration itself surfaces as a user-visible notification.
func (c *Controller) LoadAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { c.LoadProducts(gctx); return nil })
	g.Go(func() error { c.LoadUsers(gctx); return nil })
	g.Go(func() error { c.LoadOrders(gctx); return nil })
	g.Go(func() error { c.LoadPayments(gctx); return nil })

	if err := g.Wait(); err != nil {
		log.Printf("load all: %v", err)
		if c.Notifier != nil {
			c.Notifier.Error("Failed to load dashboard data")
		}
		return err
	}

	c.cacheOverview(ctx)
	return nil
}

func (c *Controller) LoadProducts(ctx context.Context) {
	items, err := c.Products.List(ctx)
	if err != nil {
		log.Printf("load products: %v", err)
		items = nil
	}
	c.Store.SetProducts(items)
}

func (c *Controller) LoadUsers(ctx context.Context) {
	items, err := c.Users.List(ctx)
	if err != nil {
		log.Printf("load users: %v", err)
		items = nil
	}
	c.Store.SetUsers(items)
}

func (c *Controller) LoadOrders(ctx context.Context) {
	items, err := c.Orders.List(ctx)
	if err != nil {
		log.Printf("load orders: %v", err)
		items = nil
	}
	c.Store.SetOrders(items)
}

// LoadPayments reconstructs the full payment set from the three
// status-partitioned listings, plus the precomputed aggregate. The merge is
// sound because every payment carries exactly one of the three statuses, so
// the partitions are disjoint and jointly exhaustive. Each of the four
// calls degrades independently to empty/nil.
func (c *Controller) LoadPayments(ctx context.Context) {
	parts := make([][]catalog.Payment, len(catalog.PaymentStatuses))
	var stats *catalog.PaymentStats

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range catalog.PaymentStatuses {
		i, status := i, status
		g.Go(func() error {
			items, err := c.Payments.ListByStatus(gctx, status)
			if err != nil {
				log.Printf("load payments %s: %v", status, err)
				return nil
			}
			parts[i] = items
			return nil
		})
	}
	g.Go(func() error {
		s, err := c.Payments.Stats(gctx)
		if err != nil {
			log.Printf("load payment stats: %v", err)
			return nil
		}
		stats = s
		return nil
	})
	_ = g.Wait()

	var merged []catalog.Payment
	for _, part := range parts {
		merged = append(merged, part...)
	}
	c.Store.SetPayments(merged, stats)
}

// cacheOverview writes the aggregated stats to Redis so the storefront's
// lightweight dashboard widget can read them without hitting this service.
func (c *Controller) cacheOverview(ctx context.Context) {
	if c.Redis == nil {
		return
	}
	b, err := json.Marshal(c.Store.Stats())
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, redisx.KeyOverviewStats, b, redisx.TTLOverviewStats).Err(); err != nil {
		log.Printf("cache overview: %v", err)
	}
}
