package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("  ", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	g.now = func() time.Time { return time.Unix(0, 42).UTC() }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10,"external_reference":"pay_1"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != "42" || status != "approved" {
		t.Fatalf("unexpected id/status %s/%s", id, status)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["external_reference"] != "pay_1" || resp["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
