package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	response "workshop_xpto/internal/adapter/http/dto/response"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// PaymentHandler settles invoices through Mercado Pago.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Charge the invoice total
// @Description  Body is a Mercado Pago payment payload, optionally wrapped as {"mp_payload": {...}}. transaction_amount is always the invoice total.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        service_id  path      int                           true  "Service id"
// @Param        body        body      request.PaymentCreateRequest  true  "Payment payload"
// @Success      200         {object}  response.PaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /work-orders/{service_id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	logger.L.Infof("[payment][handler] create start service_id=%d", id)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.L.Warnf("[payment][handler] invalid payload service_id=%d err=%v", id, err)
			writeError(c, errInvalidRequest)
			return
		}
		logger.L.Infof("[payment][handler] payload invalid in mock mode; fallback to empty payload service_id=%d err=%v", id, err)
		mpPayload = json.RawMessage("{}")
	}

	receipt, err := h.usecase.SettleInvoice(c.Request.Context(), id, mpPayload)
	if err != nil {
		logger.L.Errorf("[payment][handler] create failed service_id=%d err=%v", id, err)
		writeError(c, mapError(err))
		return
	}
	logger.L.Infof("[payment][handler] create success service_id=%d provider_payment_id=%s settled=%t",
		id, receipt.ProviderPaymentID, receipt.Settled)

	status := http.StatusOK
	if !receipt.Settled {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromPaymentReceipt(receipt))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
