package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"palettepad/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK client. In mock mode no token is needed
// and every charge is approved locally.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		zap.S().Infof("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		zap.S().Warnf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.S().Errorf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	zap.S().Infof("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		zap.S().Errorf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	zap.S().Infof("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		zap.S().Warnf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		zap.S().Errorf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		zap.S().Errorf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	zap.S().Infof("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	zap.S().Infof("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		zap.S().Errorf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	zap.S().Infof("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
