package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdiallo/shop-admin-gateway/internal/audit"
)

type fakeAuditLog struct {
	entries  []audit.Entry
	err      error
	gotLimit int
}

func (f *fakeAuditLog) ListRecent(_ context.Context, limit int) ([]audit.Entry, error) {
	f.gotLimit = limit
	return f.entries, f.err
}

func TestListRecentAuditEntries(t *testing.T) {
	fl := &fakeAuditLog{entries: []audit.Entry{{
		EventID:    "11111111-1111-1111-1111-111111111111",
		EventType:  audit.EventProductDeleted,
		ActorID:    "admin-1",
		EntityID:   "p1",
		OccurredAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}}}
	router := NewRouter()
	(&AuditHandler{Log: fl}).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/recent?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, fl.gotLimit)

	var got []audit.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].EntityID)
}

func TestListRecentAuditEmptyIsArrayNotNull(t *testing.T) {
	router := NewRouter()
	(&AuditHandler{Log: &fakeAuditLog{}}).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/recent", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListRecentAuditRepoFailure(t *testing.T) {
	router := NewRouter()
	(&AuditHandler{Log: &fakeAuditLog{err: errors.New("db down")}}).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/recent", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
