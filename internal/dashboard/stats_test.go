package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

func TestComputeStatsRevenueCountsOnlySucceededPayments(t *testing.T) {
	snap := Snapshot{
		Orders: []catalog.Order{
			{ID: "o1", TotalAmount: 100, PaymentStatus: catalog.PaymentSuccess, OrderStatus: catalog.OrderDelivered},
			{ID: "o2", TotalAmount: 50, PaymentStatus: catalog.PaymentPending, OrderStatus: catalog.OrderDelivered},
			{ID: "o3", TotalAmount: 30, PaymentStatus: catalog.PaymentFailed, OrderStatus: catalog.OrderDelivered},
		},
	}

	st := ComputeStats(snap)

	assert.Equal(t, 100.0, st.Orders.Revenue, "delivered but unpaid orders must not contribute")
	assert.Equal(t, 3, st.Orders.Total)
	assert.Equal(t, 3, st.Orders.Delivered)
}

func TestComputeStatsRolePartitionIsExhaustive(t *testing.T) {
	snap := Snapshot{
		Users: []catalog.User{
			{ID: "u1", Role: catalog.RoleClient},
			{ID: "u2", Role: catalog.RoleClient},
			{ID: "u3", Role: catalog.RoleSeller},
			{ID: "u4", Role: catalog.RoleAdmin},
		},
	}

	st := ComputeStats(snap)

	assert.Equal(t, st.Users.Total, st.Users.Clients+st.Users.Sellers+st.Users.Admins)
	assert.Equal(t, 2, st.Users.Clients)
	assert.Equal(t, 1, st.Users.Sellers)
	assert.Equal(t, 1, st.Users.Admins)
}

func TestComputeStatsProductCounts(t *testing.T) {
	snap := Snapshot{
		Products: []catalog.Product{
			{ID: "p1", Status: catalog.ProductAvailable},
			{ID: "p2", Status: catalog.ProductAvailable},
			{ID: "p3", Status: catalog.ProductOutOfStock},
			{ID: "p4", Status: catalog.ProductOnPromotion},
			{ID: "p5", Status: catalog.ProductDisabled},
		},
	}

	st := ComputeStats(snap)

	assert.Equal(t, ProductStats{Total: 5, Available: 2, OutOfStock: 1, OnPromotion: 1}, st.Products)
}

func TestComputeStatsPaymentFallbackIsZeroNotAbsent(t *testing.T) {
	st := ComputeStats(Snapshot{PaymentStats: nil})
	assert.Equal(t, catalog.PaymentStats{}, st.Payments)

	want := catalog.PaymentStats{TotalPayments: 7, Succeeded: 4, Pending: 2, Failed: 1, TotalAmount: 910.5}
	st = ComputeStats(Snapshot{PaymentStats: &want})
	assert.Equal(t, want, st.Payments)
}

func TestStoreStatsMemoizedBySnapshotVersion(t *testing.T) {
	store := NewStore()
	store.SetOrders([]catalog.Order{{ID: "o1", TotalAmount: 10, PaymentStatus: catalog.PaymentSuccess}})

	first := store.Stats()
	require.Equal(t, 10.0, first.Orders.Revenue)

	// same version, same value
	assert.Equal(t, first, store.Stats())

	// replacing a collection bumps the version and invalidates the memo
	store.SetOrders([]catalog.Order{
		{ID: "o1", TotalAmount: 10, PaymentStatus: catalog.PaymentSuccess},
		{ID: "o2", TotalAmount: 5, PaymentStatus: catalog.PaymentSuccess},
	})
	assert.Equal(t, 15.0, store.Stats().Orders.Revenue)
}
