package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tirestore_checkout/internal/adapter/http/handlers/mocks"
	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intents := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentHandler(intents, nil)

		r := gin.New()
		r.POST("/v1/payments/intent", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway rejection maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intents := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentHandler(intents, nil)

		r := gin.New()
		r.POST("/v1/payments/intent", h.CreateIntent)

		intents.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrIntentCreation)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent", bytes.NewBufferString(`{"amount":150.00,"method":"card","cardToken":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("card success returns session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intents := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentHandler(intents, nil)

		r := gin.New()
		r.POST("/v1/payments/intent", h.CreateIntent)

		intents.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(entities.Payment{
			ID:        "p1",
			Amount:    150.0,
			Method:    entities.PaymentMethodCard,
			SessionID: "s1",
			Status:    entities.PaymentStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent", bytes.NewBufferString(`{"amount":150.00,"method":"card","cardToken":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paymentId"] != "p1" || body["sessionId"] != "s1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, present := body["orderId"]; present {
			t.Fatalf("card intent must not carry orderId: %s", w.Body.String())
		}
	})

	t.Run("wallet success returns order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intents := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentHandler(intents, nil)

		r := gin.New()
		r.POST("/v1/payments/intent", h.CreateIntent)

		intents.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(entities.Payment{
			ID:      "p2",
			Amount:  80.0,
			Method:  entities.PaymentMethodWallet,
			OrderID: "po-1",
			Status:  entities.PaymentStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent", bytes.NewBufferString(`{"amount":80.00,"method":"wallet","orderId":"po-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paymentId"] != "p2" || body["orderId"] != "po-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifyStripe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-stripe", h.VerifyStripe)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-stripe", bytes.NewBufferString(`{"paymentId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-stripe", h.VerifyStripe)

		verifier.EXPECT().VerifyCard(gomock.Any(), "p1", "s1").Return(usecase.VerifyResult{
			Payment:  entities.Payment{ID: "p1", Status: entities.PaymentStatusVerified},
			Captured: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-stripe", bytes.NewBufferString(`{"paymentId":"p1","sessionId":"s1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["status"] != "verified" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not captured is still a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-stripe", h.VerifyStripe)

		verifier.EXPECT().VerifyCard(gomock.Any(), "p1", "s1").Return(usecase.VerifyResult{
			Payment:  entities.Payment{ID: "p1", Status: entities.PaymentStatusFailed},
			Captured: false,
			Detail:   "stripe status: canceled",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-stripe", bytes.NewBufferString(`{"paymentId":"p1","sessionId":"s1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["message"] != "stripe status: canceled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("correlation mismatch maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-stripe", h.VerifyStripe)

		verifier.EXPECT().VerifyCard(gomock.Any(), "p1", "wrong").Return(usecase.VerifyResult{}, usecase.ErrCorrelationMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-stripe", bytes.NewBufferString(`{"paymentId":"p1","sessionId":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_VerifyPaypal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-paypal", h.VerifyPaypal)

		verifier.EXPECT().VerifyWallet(gomock.Any(), "p2", "po-1").Return(usecase.VerifyResult{
			Payment:  entities.Payment{ID: "p2", Status: entities.PaymentStatusVerified},
			Captured: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-paypal", bytes.NewBufferString(`{"paymentId":"p2","orderId":"po-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("payment not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.POST("/v1/payments/verify-paypal", h.VerifyPaypal)

		verifier.EXPECT().VerifyWallet(gomock.Any(), "missing", "po-1").Return(usecase.VerifyResult{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-paypal", bytes.NewBufferString(`{"paymentId":"missing","orderId":"po-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPayment)

		verifier.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes method details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mocks.NewMockIPaymentVerifyUseCase(ctrl)
		h := NewPaymentHandler(nil, verifier)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPayment)

		verifier.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{
			ID:        "p1",
			Amount:    150.0,
			Method:    entities.PaymentMethodCard,
			SessionID: "s1",
			Status:    entities.PaymentStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			PaymentID      string `json:"paymentId"`
			PaymentMethod  string `json:"paymentMethod"`
			PaymentDetails struct {
				SessionID string `json:"sessionId"`
			} `json:"paymentDetails"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.PaymentID != "p1" || body.PaymentMethod != "card" || body.PaymentDetails.SessionID != "s1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrInvalidMethod, http.StatusBadRequest},
		{usecase.ErrMissingCardToken, http.StatusBadRequest},
		{usecase.ErrMissingWalletOrderID, http.StatusBadRequest},
		{usecase.ErrInvalidOrderContext, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrMissingCorrelationID, http.StatusBadRequest},
		{usecase.ErrIntentCreation, http.StatusBadGateway},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrMethodMismatch, http.StatusConflict},
		{usecase.ErrCorrelationMismatch, http.StatusConflict},
		{usecase.ErrVerificationInProgress, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
