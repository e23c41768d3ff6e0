package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kdiallo/shop-admin-gateway/internal/dashboard"
)

type overviewResp struct {
	Stats    dashboard.Stats `json:"stats"`
	LoadedAt time.Time       `json:"loadedAt"`
	Version  uint64          `json:"version"`
}

func (h *AdminHandler) registerViews(r *chi.Mux) {
	r.Post("/admin/refresh", h.refresh)
	r.Get("/admin/overview", h.overview)
	r.Get("/admin/products", h.listProducts)
	r.Get("/admin/users", h.listUsers)
	r.Get("/admin/orders", h.listOrders)
	r.Get("/admin/payments", h.listPayments)
	r.Get("/admin/notification", h.notification)
}

func (h *AdminHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.LoadAll(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "load_failed", "dashboard refresh failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) overview(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Current()
	writeJSON(w, http.StatusOK, overviewResp{
		Stats:    h.Store.Stats(),
		LoadedAt: snap.LoadedAt,
		Version:  snap.Version,
	})
}

func viewFilter(r *http.Request, statusParam string) dashboard.Filter {
	q := r.URL.Query()
	return dashboard.Filter{
		Query:  q.Get("query"),
		Status: q.Get(statusParam),
		Date:   dashboard.ParseBucket(q.Get("date")),
	}
}

func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	f := viewFilter(r, "status")
	writeJSON(w, http.StatusOK, f.Products(h.Store.Current().Products))
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	f := viewFilter(r, "role")
	writeJSON(w, http.StatusOK, f.Users(h.Store.Current().Users))
}

func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	f := viewFilter(r, "status")
	writeJSON(w, http.StatusOK, f.Orders(h.Store.Current().Orders, time.Now()))
}

func (h *AdminHandler) listPayments(w http.ResponseWriter, r *http.Request) {
	f := viewFilter(r, "status")
	writeJSON(w, http.StatusOK, f.Payments(h.Store.Current().Payments, time.Now()))
}

func (h *AdminHandler) notification(w http.ResponseWriter, r *http.Request) {
	n, ok := h.Notifier.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
