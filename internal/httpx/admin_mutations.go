package httpx

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kdiallo/shop-admin-gateway/internal/audit"
	"github.com/kdiallo/shop-admin-gateway/internal/backend"
	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
	"github.com/kdiallo/shop-admin-gateway/internal/dashboard"
)

// Backend mutation contracts; satisfied by the clients in internal/backend.

type ProductAdmin interface {
	UpdateStatus(ctx context.Context, id string, status catalog.ProductStatus) error
	Delete(ctx context.Context, id string) error
}

type UserAdmin interface {
	Update(ctx context.Context, id string, patch backend.UserPatch) error
	Delete(ctx context.Context, id string) error
}

type OrderAdmin interface {
	UpdateStatus(ctx context.Context, id string, status catalog.OrderStatus) error
}

type PaymentAdmin interface {
	Confirm(ctx context.Context, id, transactionReference string) error
	Fail(ctx context.Context, id, reason string) error
}

// IntentStore issues and burns delete-confirmation tokens.
type IntentStore interface {
	Create(ctx context.Context, kind, id string) (string, error)
	Consume(ctx context.Context, kind, id, token string) (bool, error)
}

type AdminHandler struct {
	Store      *dashboard.Store
	Controller *dashboard.Controller
	Notifier   *dashboard.Notifier
	Intents    IntentStore
	Audit      *audit.Recorder

	ProductsSvc ProductAdmin
	UsersSvc    UserAdmin
	OrdersSvc   OrderAdmin
	PaymentsSvc PaymentAdmin
}

func (h *AdminHandler) Register(r *chi.Mux) {
	h.registerViews(r)

	r.Patch("/admin/products/{id}/status", h.updateProductStatus)
	r.Post("/admin/products/{id}/delete-intent", h.productDeleteIntent)
	r.Delete("/admin/products/{id}", h.deleteProduct)

	r.Patch("/admin/users/{id}/role", h.updateUserRole)
	r.Post("/admin/users/{id}/delete-intent", h.userDeleteIntent)
	r.Delete("/admin/users/{id}", h.deleteUser)

	r.Patch("/admin/orders/{id}/status", h.updateOrderStatus)

	r.Post("/admin/payments/{id}/confirm", h.confirmPayment)
	r.Post("/admin/payments/{id}/fail", h.failPayment)
}

// actor extracts the acting admin's id. Mutations are rejected without one:
// the audit trail has to name somebody.
func actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get("X-Admin-Id")
	if id == "" {
		writeError(w, http.StatusUnauthorized, "missing_actor", "X-Admin-Id header required")
		return "", false
	}
	return id, true
}

type updateProductStatusReq struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OUT_OF_STOCK ON_PROMOTION DISABLED"`
}

func (h *AdminHandler) updateProductStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req updateProductStatusReq
	if !decodeValid(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.ProductsSvc.UpdateStatus(ctx, id, catalog.ProductStatus(req.Status)); err != nil {
		log.Printf("update product status: %v", err)
		h.Notifier.Error("Failed to update product status")
		writeError(w, http.StatusBadGateway, "backend_error", "product status update failed")
		return
	}

	h.Notifier.Success("Product status updated")
	h.Audit.Record(actorID, audit.EventProductStatusUpdated,
		audit.StatusUpdatedPayload{EntityID: id, NewStatus: req.Status})
	h.Controller.LoadProducts(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) productDeleteIntent(w http.ResponseWriter, r *http.Request) {
	if _, ok := actor(w, r); !ok {
		return
	}
	token, err := h.Intents.Create(r.Context(), "product", chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("product delete intent: %v", err)
		writeError(w, http.StatusInternalServerError, "intent_failed", "could not create delete intent")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	confirmed, err := h.Intents.Consume(ctx, "product", id, r.URL.Query().Get("token"))
	if err != nil {
		log.Printf("consume product intent: %v", err)
	}
	if !confirmed {
		writeError(w, http.StatusConflict, "not_confirmed", "delete requires a live confirmation token")
		return
	}

	if err := h.ProductsSvc.Delete(ctx, id); err != nil {
		log.Printf("delete product: %v", err)
		h.Notifier.Error("Failed to delete product")
		writeError(w, http.StatusBadGateway, "backend_error", "product delete failed")
		return
	}

	h.Notifier.Success("Product deleted")
	h.Audit.Record(actorID, audit.EventProductDeleted, audit.DeletedPayload{EntityID: id})
	h.Controller.LoadProducts(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type updateUserRoleReq struct {
	Role string `json:"role" validate:"required,oneof=CLIENT SELLER ADMIN"`
}

func (h *AdminHandler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req updateUserRoleReq
	if !decodeValid(w, r, &req) {
		return
	}

	// an admin cannot demote their own account
	if id == actorID && catalog.Role(req.Role) != catalog.RoleAdmin {
		writeError(w, http.StatusForbidden, "self_demotion", "cannot change your own admin role")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	role := catalog.Role(req.Role)
	if err := h.UsersSvc.Update(ctx, id, backend.UserPatch{Role: &role}); err != nil {
		log.Printf("update user role: %v", err)
		h.Notifier.Error("Failed to update user role")
		writeError(w, http.StatusBadGateway, "backend_error", "user role update failed")
		return
	}

	h.Notifier.Success("User role updated")
	h.Audit.Record(actorID, audit.EventUserRoleUpdated,
		audit.StatusUpdatedPayload{EntityID: id, NewStatus: req.Role})
	h.Controller.LoadUsers(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) userDeleteIntent(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if id == actorID {
		writeError(w, http.StatusForbidden, "self_deletion", "cannot delete your own account")
		return
	}
	token, err := h.Intents.Create(r.Context(), "user", id)
	if err != nil {
		log.Printf("user delete intent: %v", err)
		writeError(w, http.StatusInternalServerError, "intent_failed", "could not create delete intent")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if id == actorID {
		writeError(w, http.StatusForbidden, "self_deletion", "cannot delete your own account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	confirmed, err := h.Intents.Consume(ctx, "user", id, r.URL.Query().Get("token"))
	if err != nil {
		log.Printf("consume user intent: %v", err)
	}
	if !confirmed {
		writeError(w, http.StatusConflict, "not_confirmed", "delete requires a live confirmation token")
		return
	}

	if err := h.UsersSvc.Delete(ctx, id); err != nil {
		log.Printf("delete user: %v", err)
		h.Notifier.Error("Failed to delete user")
		writeError(w, http.StatusBadGateway, "backend_error", "user delete failed")
		return
	}

	h.Notifier.Success("User deleted")
	h.Audit.Record(actorID, audit.EventUserDeleted, audit.DeletedPayload{EntityID: id})
	h.Controller.LoadUsers(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type updateOrderStatusReq struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING IN_TRANSIT DELIVERED CANCELLED"`
}

func (h *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req updateOrderStatusReq
	if !decodeValid(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.OrdersSvc.UpdateStatus(ctx, id, catalog.OrderStatus(req.Status)); err != nil {
		log.Printf("update order status: %v", err)
		h.Notifier.Error("Failed to update order status")
		writeError(w, http.StatusBadGateway, "backend_error", "order status update failed")
		return
	}

	h.Notifier.Success("Order status updated")
	h.Audit.Record(actorID, audit.EventOrderStatusUpdated,
		audit.StatusUpdatedPayload{EntityID: id, NewStatus: req.Status})
	h.Controller.LoadOrders(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type confirmPaymentReq struct {
	TransactionReference string `json:"transactionReference" validate:"omitempty,min=4"`
}

// SynthesizeTransactionReference builds the reference used when the
// operator confirms a payment without supplying one.
func SynthesizeTransactionReference(now time.Time) string {
	return fmt.Sprintf("ADMIN-%d", now.UnixMilli())
}

func (h *AdminHandler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req confirmPaymentReq
	if !decodeValid(w, r, &req) {
		return
	}
	ref := req.TransactionReference
	if ref == "" {
		ref = SynthesizeTransactionReference(time.Now())
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.PaymentsSvc.Confirm(ctx, id, ref); err != nil {
		log.Printf("confirm payment: %v", err)
		h.Notifier.Error("Failed to update payment status")
		writeError(w, http.StatusBadGateway, "backend_error", "payment confirm failed")
		return
	}

	h.Notifier.Success("Payment confirmed")
	h.Audit.Record(actorID, audit.EventPaymentConfirmed,
		audit.PaymentConfirmedPayload{PaymentID: id, TransactionReference: ref})
	h.Controller.LoadPayments(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "transactionReference": ref})
}

type failPaymentReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *AdminHandler) failPayment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req failPaymentReq
	if !decodeValid(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.PaymentsSvc.Fail(ctx, id, req.Reason); err != nil {
		log.Printf("fail payment: %v", err)
		h.Notifier.Error("Failed to update payment status")
		writeError(w, http.StatusBadGateway, "backend_error", "payment fail call failed")
		return
	}

	h.Notifier.Success("Payment marked as failed")
	h.Audit.Record(actorID, audit.EventPaymentFailed,
		audit.PaymentFailedPayload{PaymentID: id, Reason: req.Reason})
	h.Controller.LoadPayments(ctx)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
