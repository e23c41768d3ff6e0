package dashboard

import "github.com/kdiallo/shop-admin-gateway/internal/catalog"

type ProductStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	OutOfStock  int `json:"outOfStock"`
	OnPromotion int `json:"onPromotion"`
}

type UserStats struct {
	Total   int `json:"total"`
	Clients int `json:"clients"`
	Sellers int `json:"sellers"`
	Admins  int `json:"admins"`
}

type OrderStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Delivered int     `json:"delivered"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

type Stats struct {
	Products ProductStats         `json:"products"`
	Users    UserStats            `json:"users"`
	Orders   OrderStats           `json:"orders"`
	Payments catalog.PaymentStats `json:"payments"`
}

// ComputeStats derives the overview statistics from a snapshot. Pure: no
// I/O, no mutation of the snapshot.
//
// Revenue counts only orders whose payment actually succeeded; a delivered
// order with a pending or failed payment contributes nothing.
func ComputeStats(snap Snapshot) Stats {
	var st Stats

	st.Products.Total = len(snap.Products)
	for _, p := range snap.Products {
		switch p.Status {
		case catalog.ProductAvailable:
			st.Products.Available++
		case catalog.ProductOutOfStock:
			st.Products.OutOfStock++
		case catalog.ProductOnPromotion:
			st.Products.OnPromotion++
		}
	}

	st.Users.Total = len(snap.Users)
	for _, u := range snap.Users {
		switch u.Role {
		case catalog.RoleClient:
			st.Users.Clients++
		case catalog.RoleSeller:
			st.Users.Sellers++
		case catalog.RoleAdmin:
			st.Users.Admins++
		}
	}

	st.Orders.Total = len(snap.Orders)
	for _, o := range snap.Orders {
		switch o.OrderStatus {
		case catalog.OrderPending:
			st.Orders.Pending++
		case catalog.OrderDelivered:
			st.Orders.Delivered++
		case catalog.OrderCancelled:
			st.Orders.Cancelled++
		}
		if o.PaymentStatus == catalog.PaymentSuccess {
			st.Orders.Revenue += o.TotalAmount
		}
	}

	// The payment service precomputes its aggregate; fall back to an
	// explicit zero record when the stats fetch failed so callers never
	// need a presence check.
	if snap.PaymentStats != nil {
		st.Payments = *snap.PaymentStats
	}

	return st
}
