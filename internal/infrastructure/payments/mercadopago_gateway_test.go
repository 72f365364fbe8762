package payments

import (
	"context"
	"encoding/json"
	"testing"

	"workshop_xpto/internal/logger"

	"github.com/cockroachdb/errors"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", logger.NewNop())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	fake := &fakeCreator{resp: &payment.Response{ID: 123, Status: "approved"}}
	g := &MercadoPagoGateway{client: fake, log: logger.NewNop()}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":1500,"payment_method_id":"pix","external_reference":"work-order-7"}`))
	require.NoError(t, err)
	assert.Equal(t, "123", id)
	assert.Equal(t, "approved", status)
	assert.True(t, json.Valid(raw))
	assert.Equal(t, 1500.0, fake.got.TransactionAmount)
	assert.Equal(t, "work-order-7", fake.got.ExternalReference)
}

func TestMercadoPagoGateway_CreatePaymentErrors(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakeCreator{}, log: logger.NewNop()}
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
	assert.Error(t, err)

	sdkErr := errors.New(`{"status":401,"error":"unauthorized"}`)
	g = &MercadoPagoGateway{client: &fakeCreator{err: sdkErr}, log: logger.NewNop()}
	_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, sdkErr)
}
