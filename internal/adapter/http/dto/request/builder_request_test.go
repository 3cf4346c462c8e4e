package request

import (
	"encoding/json"
	"testing"
)

func TestLineUpdateRequest_Empty(t *testing.T) {
	var r LineUpdateRequest
	if !r.Empty() {
		t.Fatalf("expected empty request")
	}
	if err := json.Unmarshal([]byte(`{"unit_price":0}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Empty() || *r.UnitPrice != 0 {
		t.Fatalf("expected explicit zero unit price, got %+v", r)
	}
}

func TestVATRequest_PartialPayload(t *testing.T) {
	var r VATRequest
	if err := json.Unmarshal([]byte(`{"enabled":false}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Enabled == nil || *r.Enabled || r.Rate != nil {
		t.Fatalf("unexpected request: %+v", r)
	}
}

func TestResolveClientID(t *testing.T) {
	if got := ResolveClientID("  cl_1 "); got != "cl_1" {
		t.Fatalf("expected cl_1, got %q", got)
	}
}
