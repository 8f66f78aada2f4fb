package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIClient_CreateIntent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/payments/intent" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var req IntentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if req.Method != "card" || req.CardToken != "tok-1" {
				t.Fatalf("unexpected payload: %+v", req)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(IntentResult{PaymentID: "p1", SessionID: "s1", Status: "pending"})
		}))
		defer srv.Close()

		c := NewAPIClient(srv.URL)
		res, err := c.CreateIntent(context.Background(), IntentRequest{Amount: 150.00, Method: "card", CardToken: "tok-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentID != "p1" || res.SessionID != "s1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("api error body surfaces code and message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"code":"INTENT_CREATION_FAILED","message":"Payment could not be created with the gateway"}`))
		}))
		defer srv.Close()

		c := NewAPIClient(srv.URL)
		_, err := c.CreateIntent(context.Background(), IntentRequest{Amount: 10, Method: "card", CardToken: "tok-1"})
		if !errors.Is(err, ErrIntentCreation) {
			t.Fatalf("expected ErrIntentCreation, got %v", err)
		}
		if !strings.Contains(err.Error(), "INTENT_CREATION_FAILED") {
			t.Fatalf("expected error code in message, got %v", err)
		}
	})
}

func TestAPIClient_Verify(t *testing.T) {
	t.Run("stripe", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/payments/verify-stripe" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["paymentId"] != "p1" || body["sessionId"] != "s1" {
				t.Fatalf("unexpected payload: %v", body)
			}
			_ = json.NewEncoder(w).Encode(VerifyOutcome{Success: true, Message: "payment verified"})
		}))
		defer srv.Close()

		c := NewAPIClient(srv.URL)
		out, err := c.VerifyStripe(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("paypal not captured is a regular outcome", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/payments/verify-paypal" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(VerifyOutcome{Success: false, Message: "paypal status: VOIDED"})
		}))
		defer srv.Close()

		c := NewAPIClient(srv.URL)
		out, err := c.VerifyPaypal(context.Background(), "p2", "po-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Message != "paypal status: VOIDED" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("server error wraps ErrVerification", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewAPIClient(srv.URL)
		_, err := c.VerifyStripe(context.Background(), "p1", "s1")
		if !errors.Is(err, ErrVerification) {
			t.Fatalf("expected ErrVerification, got %v", err)
		}
	})
}

func TestAPIClient_GetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/payments/p1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(PaymentRecord{
			PaymentID:      "p1",
			PaymentMethod:  "card",
			Amount:         150.00,
			Status:         "pending",
			PaymentDetails: PaymentDetails{SessionID: "s1"},
		})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	rec, err := c.GetPayment(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PaymentMethod != "card" || rec.PaymentDetails.SessionID != "s1" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
