package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentAmount           = errors.New("payment amount must be greater than zero")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// NewPayment is the input of IPaymentUseCase.Record. ProviderPayload is only
// used for card payments and is sent to Mercado Pago as is, after the amount
// and reference are filled in.
type NewPayment struct {
	ClientID        string
	OfferID         string
	Amount          float64
	Method          entities.PaymentMethod
	PaidAt          *time.Time
	Notes           string
	ProviderPayload json.RawMessage
}

// IPaymentUseCase exposes the payment side of the tracker.
type IPaymentUseCase interface {
	List(ctx context.Context, clientID string) ([]entities.Payment, error)
	Record(ctx context.Context, in NewPayment) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentUseCase struct {
	repo           interfaces.IPaymentRepository
	gateway        interfaces.IPaymentGateway
	testPayerEmail string
	now            func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the payment repository and gateway. testPayerEmail
// fills payer.email on card payloads that carry no payer (sandbox accounts).
func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, testPayerEmail string) *PaymentUseCase {
	return &PaymentUseCase{
		repo:           repo,
		gateway:        gateway,
		testPayerEmail: strings.TrimSpace(testPayerEmail),
		now:            time.Now,
	}
}

func (u *PaymentUseCase) List(ctx context.Context, clientID string) ([]entities.Payment, error) {
	return u.repo.List(ctx, strings.TrimSpace(clientID))
}

func (u *PaymentUseCase) Record(ctx context.Context, in NewPayment) (entities.Payment, error) {
	p := entities.Payment{
		ID:       newID(idPrefixPayment),
		ClientID: strings.TrimSpace(in.ClientID),
		OfferID:  strings.TrimSpace(in.OfferID),
		Amount:   in.Amount,
		Method:   entities.PaymentMethod(strings.ToLower(strings.TrimSpace(string(in.Method)))),
		Notes:    strings.TrimSpace(in.Notes),
	}
	switch {
	case p.ClientID == "":
		return entities.Payment{}, ErrInvalidClientID
	case math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount <= 0:
		return entities.Payment{}, ErrInvalidPaymentAmount
	case !p.Method.Valid():
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	if in.PaidAt != nil && !in.PaidAt.IsZero() {
		p.PaidAt = in.PaidAt.UTC()
	} else {
		p.PaidAt = u.now().UTC()
	}

	if p.Method == entities.PaymentMethodCard && len(in.ProviderPayload) > 0 {
		zap.S().Infof("[payment][usecase] charging card client_id=%s payment_id=%s payload_len=%d", p.ClientID, p.ID, len(in.ProviderPayload))
		providerID, providerStatus, err := u.charge(ctx, p, in.ProviderPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		p.ProviderPaymentID = providerID
		p.ProviderStatus = providerStatus
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		zap.S().Errorf("[payment][usecase] create failed client_id=%s payment_id=%s err=%v", p.ClientID, p.ID, err)
		return entities.Payment{}, err
	}
	zap.S().Infof("[payment][usecase] recorded payment_id=%s client_id=%s amount=%.2f method=%s", created.ID, created.ClientID, created.Amount, created.Method)
	return created, nil
}

func (u *PaymentUseCase) charge(ctx context.Context, p entities.Payment, payload json.RawMessage) (string, string, error) {
	if u.gateway == nil {
		return "", "", ErrPaymentGatewayNotConfigured
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		zap.S().Warnf("[payment][usecase] invalid payload (not-json object) payment_id=%s", p.ID)
		return "", "", ErrInvalidMPPayload
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		zap.S().Warnf("[payment][usecase] missing payment_method_id payment_id=%s", p.ID)
		return "", "", ErrInvalidMPPayload
	}
	ensurePayerDefaults(req, u.testPayerEmail)
	if !hasPayer(req) {
		zap.S().Warnf("[payment][usecase] missing/invalid payer payment_id=%s", p.ID)
		return "", "", ErrInvalidMPPayload
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = p.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("PalettePad payment %s", p.ID)
	}
	// The recorded amount is what gets charged.
	req["transaction_amount"] = p.Amount

	body, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		zap.S().Errorf("[payment][usecase] payment gateway failed payment_id=%s err=%v", p.ID, err)
		return "", "", classifyGatewayError(err)
	}
	zap.S().Infof("[payment][usecase] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerID, providerStatus)
	return providerID, providerStatus, nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		zap.S().Errorf("[payment][usecase] delete failed payment_id=%s err=%v", id, err)
		return err
	}
	zap.S().Infof("[payment][usecase] deleted payment_id=%s", id)
	return nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, testPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && testPayerEmail != "" {
		payer["email"] = testPayerEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
