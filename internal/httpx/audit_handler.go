package httpx

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kdiallo/shop-admin-gateway/internal/audit"
)

// AuditLog is the readback side of the audit trail; *audit.Repo satisfies
// it.
type AuditLog interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Entry, error)
}

// AuditHandler serves the persisted admin-action trail from the audit
// binary.
type AuditHandler struct {
	Log AuditLog
}

func (h *AuditHandler) Register(r *chi.Mux) {
	r.Get("/audit/recent", h.listRecent)
}

func (h *AuditHandler) listRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.Log.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list audit: %v", err)
		writeError(w, http.StatusInternalServerError, "audit_failed", "could not read audit trail")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
