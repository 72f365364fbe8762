package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/usecase"
	"workshop_xpto/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidServiceID = pkg.NewDomainErrorSimple("INVALID_SERVICE_ID", "Service id must be a positive integer", http.StatusBadRequest)
)

// mapError translates usecase errors into the API error shape. Validation
// errors carry their hint as the message. The payment sentinels are matched
// before the generic validation case because their return sites also carry
// the validation mark.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainError("NOTHING_TO_CHARGE", "Invoice total must be positive to charge", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errs.IsValidation(err):
		msg := errs.Hint(err)
		if msg == "" {
			msg = "Invalid request"
		}
		return pkg.NewDomainError("VALIDATION_ERROR", msg, err, http.StatusBadRequest)
	case errs.IsNotFound(err):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errs.IsDuplicateCatalogName(err):
		return pkg.NewDomainError("CATALOG_NAME_TAKEN", "A catalog entry with this name already exists", err, http.StatusConflict)
	case errs.IsPermissionDenied(err):
		return pkg.NewDomainError("PERMISSION_DENIED", "Admin access required", err, http.StatusForbidden)
	case errs.IsAlreadyPaid(err):
		return pkg.NewDomainError("ALREADY_PAID", "Invoice already paid", err, http.StatusConflict)
	case errs.IsStoreUnavailable(err):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func serviceIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("service_id")), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidServiceID)
		return 0, false
	}
	return id, true
}

// bindingError keeps the validator message for malformed bodies.
func bindingError(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest)
}
