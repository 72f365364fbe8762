package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/domain/invoice"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid mercado pago payload")
	ErrNothingToCharge                = errors.New("invoice total must be positive to charge")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase settles a work order invoice through the payment provider.
//
// The amount charged is always the invoice total computed server side; any
// transaction_amount in the client payload is overwritten.
type IPaymentUseCase interface {
	SettleInvoice(ctx context.Context, serviceID int64, mpPayload json.RawMessage) (entities.PaymentReceipt, error)
}

// PaymentSettings carries the provider options relevant to the usecase.
type PaymentSettings struct {
	Mock        bool
	AccessToken string
}

type PaymentUseCase struct {
	invoices IInvoiceUseCase
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	log      *logger.Logger
	now      func() time.Time
	settling *settleLocks
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(invoices IInvoiceUseCase, gateway interfaces.IPaymentGateway, settings PaymentSettings, log *logger.Logger) *PaymentUseCase {
	if log == nil {
		log = logger.L
	}
	return &PaymentUseCase{
		invoices: invoices,
		gateway:  gateway,
		settings: settings,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		settling: newSettleLocks(),
	}
}

func (u *PaymentUseCase) SettleInvoice(ctx context.Context, serviceID int64, mpPayload json.RawMessage) (entities.PaymentReceipt, error) {
	u.log.Infof("[payment][usecase] settle start service_id=%d payload_len=%d", serviceID, len(mpPayload))
	mockMode := u.settings.Mock

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warnf("[payment][usecase] invalid payload service_id=%d", serviceID)
			return entities.PaymentReceipt{}, invalidPayload()
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.log.Errorf("[payment][usecase] gateway not configured service_id=%d", serviceID)
		return entities.PaymentReceipt{}, ErrPaymentGatewayNotConfigured
	}

	// Held from the paid check until the invoice is marked paid, so a second
	// request for the same work order sees Paid instead of charging again.
	unlock, err := u.settling.lock(ctx, serviceID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	defer unlock()

	inv, err := u.invoices.GetInvoice(ctx, serviceID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if inv.Breakdown.PaymentStatus == entities.PaymentStatusPaid {
		return entities.PaymentReceipt{}, errs.AlreadyPaid(serviceID)
	}
	total := inv.Breakdown.Total.Round(invoice.DisplayPlaces)
	if !total.IsPositive() {
		return entities.PaymentReceipt{}, errors.Mark(ErrNothingToCharge, errs.ErrValidation)
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		if !mockMode {
			return entities.PaymentReceipt{}, invalidPayload()
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Warnf("[payment][usecase] missing payment_method_id service_id=%d", serviceID)
			return entities.PaymentReceipt{}, invalidPayload()
		}
		ensurePayerDefaults(reqMap, u.settings.AccessToken)
		if !hasPayer(reqMap) {
			u.log.Warnf("[payment][usecase] missing/invalid payer service_id=%d", serviceID)
			return entities.PaymentReceipt{}, invalidPayload()
		}
	}

	reference := fmt.Sprintf("work-order-%d", serviceID)
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = reference
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Work order %d", serviceID)
	}
	reqMap["transaction_amount"] = total.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentReceipt{}, errors.Wrap(err, "encode payment payload")
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		u.log.Infof("[payment][usecase] mock mode enabled; skipping external payment gateway service_id=%d", serviceID)
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		err = classifyGatewayError(err)
	}
	if err != nil {
		u.log.Errorf("[payment][usecase] payment gateway failed service_id=%d err=%v", serviceID, err)
		return entities.PaymentReceipt{}, err
	}
	u.log.Infof("[payment][usecase] payment gateway success service_id=%d provider_payment_id=%s provider_status=%s", serviceID, providerPaymentID, providerStatus)

	receipt := entities.PaymentReceipt{
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		ServiceID:         serviceID,
		Amount:            total,
		Currency:          inv.Currency,
		Settled:           entities.Settles(providerStatus),
		PaidAt:            u.now(),
		ProviderResponse:  providerResp,
		Payload:           reqMap,
	}
	if !receipt.Settled {
		u.log.Warnf("[payment][usecase] payment not settled service_id=%d provider_status=%s", serviceID, providerStatus)
		return receipt, nil
	}

	paid := entities.PaymentStatusPaid
	if _, err := u.invoices.UpdateBilling(ctx, serviceID, entities.BillingPatch{PaymentStatus: &paid}); err != nil {
		u.log.Errorf("[payment][usecase] mark paid failed service_id=%d provider_payment_id=%s err=%v", serviceID, providerPaymentID, err)
		return entities.PaymentReceipt{}, err
	}
	u.log.Infof("[payment][usecase] settle success service_id=%d amount=%s", serviceID, invoice.Format(total))
	return receipt, nil
}

// settleLocks serializes settlement per work order within this process.
type settleLocks struct {
	mu    sync.Mutex
	byKey map[int64]*settleLock
}

type settleLock struct {
	ch   chan struct{}
	refs int
}

func newSettleLocks() *settleLocks {
	return &settleLocks{byKey: map[int64]*settleLock{}}
}

// lock waits for the per-id slot or for ctx to end. The returned func
// releases the slot.
func (l *settleLocks) lock(ctx context.Context, id int64) (func(), error) {
	l.mu.Lock()
	e, ok := l.byKey[id]
	if !ok {
		e = &settleLock{ch: make(chan struct{}, 1)}
		l.byKey[id] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(id, e)
		return nil, errors.Wrap(ctx.Err(), "wait for settlement lock")
	}
	return func() {
		<-e.ch
		l.release(id, e)
	}, nil
}

func (l *settleLocks) release(id int64, e *settleLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.byKey, id)
	}
}

func (u *PaymentUseCase) mockPayment(reqMap map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = entities.ProviderStatusApproved
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, entities.ProviderStatusApproved, b, nil
}

// invalidPayload returns ErrInvalidPaymentPayload marked as a validation error.
func invalidPayload() error {
	return errors.Mark(ErrInvalidPaymentPayload, errs.ErrValidation)
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

// ensurePayerDefaults fills payer.type and, for sandbox tokens, a test payer
// email when neither id nor email was given.
func ensurePayerDefaults(m map[string]any, accessToken string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		if m["payer"] != nil {
			return
		}
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return errors.Mark(err, ErrPaymentGatewayCustomerNotFound)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return errors.Mark(err, ErrPaymentGatewayInvalidUsers)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return errors.Mark(err, ErrPaymentGatewayUnauthorized)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return errors.Mark(err, ErrPaymentGatewayBadRequest)
	}
	return err
}
