package catalog

import (
	"encoding/json"
	"testing"
)

func TestTimestampLenientDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantZero bool
	}{
		{"rfc3339", `"2024-03-15T12:00:00Z"`, false},
		{"rfc3339 nano", `"2024-03-15T12:00:00.123456789+01:00"`, false},
		{"no zone", `"2024-03-15T12:00:00"`, false},
		{"date only", `"2024-03-15"`, false},
		{"null", `null`, true},
		{"empty string", `""`, true},
		{"garbage", `"yesterday sometime"`, true},
		{"epoch-ish digits", `"17105"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("decode must never fail, got %v", err)
			}
			if ts.IsZero() != tt.wantZero {
				t.Errorf("IsZero() = %v, want %v", ts.IsZero(), tt.wantZero)
			}
		})
	}
}

func TestTimestampDisplayNotAvailable(t *testing.T) {
	var zero Timestamp
	if got := zero.Display(); got != "n/a" {
		t.Errorf("zero timestamp displays %q, want n/a", got)
	}
}

func TestTimestampDecodeInsideEntity(t *testing.T) {
	var p Product
	raw := `{"id":"p1","title":"Rice 25kg","price":30,"currency":"USD","status":"AVAILABLE","createdAt":"not-a-date"}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("entity decode must survive a bad createdAt: %v", err)
	}
	if !p.CreatedAt.IsZero() {
		t.Error("bad createdAt should decode to the zero value")
	}
}

func TestMetaFallsBackToRawValue(t *testing.T) {
	if got := OrderStatus("REFUNDED").Meta().Label; got != "REFUNDED" {
		t.Errorf("unknown order status label = %q, want raw value", got)
	}
	if got := OrderDelivered.Meta().Label; got != "Delivered" {
		t.Errorf("known order status label = %q", got)
	}
	if got := PaymentMethod("CRYPTO").Meta().Label; got != "CRYPTO" {
		t.Errorf("unknown method label = %q, want raw value", got)
	}
}
