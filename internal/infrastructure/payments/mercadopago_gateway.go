package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")

// paymentCreator is the part of payment.Client the gateway uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client paymentCreator
	log    *logger.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log *logger.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = logger.L
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "mercado pago sdk config")
	}
	log.Infof("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	g.log.Infof("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warnf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, errors.Wrap(err, "decode payment request")
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Errorf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, errors.Wrap(err, "encode payment response")
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Infof("[payment][gateway] create success provider_payment_id=%s provider_status=%s", id, resp.Status)
	return id, resp.Status, b, nil
}
