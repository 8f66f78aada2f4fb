package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tirestore_checkout/internal/adapter/http/dto/request"
	response "tirestore_checkout/internal/adapter/http/dto/response"
	"tirestore_checkout/internal/usecase"
	"tirestore_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment workflow: intent
// creation, the two gateway verification callbacks and the deferred
// single-payment lookup.

type PaymentHandler struct {
	intents  usecase.IPaymentIntentUseCase
	verifier usecase.IPaymentVerifyUseCase
}

func NewPaymentHandler(intents usecase.IPaymentIntentUseCase, verifier usecase.IPaymentVerifyUseCase) *PaymentHandler {
	return &PaymentHandler{intents: intents, verifier: verifier}
}

// CreateIntent creates a pending payment and returns the method-specific
// gateway correlation id.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.CreateIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-intent invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent start method=%s amount=%.2f", payload.Method, payload.Amount)

	created, err := h.intents.CreateIntent(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[payment][handler] create-intent failed method=%s err=%v", payload.Method, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent success payment_id=%s correlation_id=%s", created.ID, created.CorrelationID())

	c.JSON(http.StatusCreated, response.FromIntent(created))
}

// VerifyStripe confirms card capture for the given payment/session pair.
func (h *PaymentHandler) VerifyStripe(c *gin.Context) {
	var payload request.VerifyStripeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify-stripe invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify-stripe start payment_id=%s", payload.PaymentID)

	res, err := h.verifier.VerifyCard(c.Request.Context(), payload.PaymentID, payload.SessionID)
	if err != nil {
		log.Printf("[payment][handler] verify-stripe failed payment_id=%s err=%v", payload.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify-stripe done payment_id=%s success=%t", payload.PaymentID, res.Captured)

	c.JSON(http.StatusOK, response.FromVerifyResult(res))
}

// VerifyPaypal confirms wallet capture for the given payment/order pair.
func (h *PaymentHandler) VerifyPaypal(c *gin.Context) {
	var payload request.VerifyPaypalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify-paypal invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify-paypal start payment_id=%s", payload.PaymentID)

	res, err := h.verifier.VerifyWallet(c.Request.Context(), payload.PaymentID, payload.OrderID)
	if err != nil {
		log.Printf("[payment][handler] verify-paypal failed payment_id=%s err=%v", payload.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify-paypal done payment_id=%s success=%t", payload.PaymentID, res.Captured)

	c.JSON(http.StatusOK, response.FromVerifyResult(res))
}

// GetPayment returns a single payment with its method-specific details. The
// storefront's /payment/success page uses it to resume verification.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] get start payment_id=%s", paymentID)

	p, err := h.verifier.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidMethod),
		errors.Is(err, usecase.ErrMissingCardToken),
		errors.Is(err, usecase.ErrMissingWalletOrderID),
		errors.Is(err, usecase.ErrInvalidOrderContext),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrMissingCorrelationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIntentCreation):
		return pkg.NewDomainErrorSimple("INTENT_CREATION_FAILED", "Payment could not be created with the gateway", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMethodMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_MISMATCH", "Payment method does not match the verification endpoint", http.StatusConflict)
	case errors.Is(err, usecase.ErrCorrelationMismatch):
		return pkg.NewDomainErrorSimple("CORRELATION_MISMATCH", "Gateway correlation id does not match the payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationInProgress):
		return pkg.NewDomainErrorSimple("VERIFICATION_IN_PROGRESS", "Verification already in progress for this payment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
