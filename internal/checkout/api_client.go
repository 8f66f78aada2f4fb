package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IntentRequest is the intent-creation payload, discriminated by Method.

type IntentRequest struct {
	Amount       float64         `json:"amount"`
	Method       string          `json:"method"`
	CardToken    string          `json:"cardToken,omitempty"`
	OrderID      string          `json:"orderId,omitempty"`
	OrderRef     string          `json:"orderRef,omitempty"`
	OrderContext json.RawMessage `json:"orderContext,omitempty"`
}

// IntentResult carries the new payment id and its method-specific correlation id.

type IntentResult struct {
	PaymentID string `json:"paymentId"`
	SessionID string `json:"sessionId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status"`
}

// VerifyOutcome is the uniform verification answer for both gateways.

type VerifyOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaymentDetails carries the correlation field of a fetched payment.

type PaymentDetails struct {
	SessionID string `json:"sessionId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
}

// PaymentRecord is the read-only projection served by GET /payments/:id.

type PaymentRecord struct {
	PaymentID      string         `json:"paymentId"`
	PaymentMethod  string         `json:"paymentMethod"`
	Amount         float64        `json:"amount"`
	Status         string         `json:"status"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

// PaymentsAPI is the remote payment record store consumed by the router.

type PaymentsAPI interface {
	CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error)
	VerifyStripe(ctx context.Context, paymentID, sessionID string) (VerifyOutcome, error)
	VerifyPaypal(ctx context.Context, paymentID, orderID string) (VerifyOutcome, error)
	GetPayment(ctx context.Context, paymentID string) (PaymentRecord, error)
}

// APIClient talks to the checkout service's /v1 payment endpoints.

type APIClient struct {
	baseURL string
	hc      *http.Client
}

var _ PaymentsAPI = (*APIClient)(nil)

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{baseURL: baseURL, hc: &http.Client{}}
}

func (c *APIClient) CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error) {
	var out IntentResult
	if err := c.postJSON(ctx, "/payments/intent", req, &out); err != nil {
		return IntentResult{}, fmt.Errorf("%w: %v", ErrIntentCreation, err)
	}
	return out, nil
}

func (c *APIClient) VerifyStripe(ctx context.Context, paymentID, sessionID string) (VerifyOutcome, error) {
	body := map[string]string{"paymentId": paymentID, "sessionId": sessionID}
	var out VerifyOutcome
	if err := c.postJSON(ctx, "/payments/verify-stripe", body, &out); err != nil {
		return VerifyOutcome{}, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return out, nil
}

func (c *APIClient) VerifyPaypal(ctx context.Context, paymentID, orderID string) (VerifyOutcome, error) {
	body := map[string]string{"paymentId": paymentID, "orderId": orderID}
	var out VerifyOutcome
	if err := c.postJSON(ctx, "/payments/verify-paypal", body, &out); err != nil {
		return VerifyOutcome{}, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return out, nil
}

func (c *APIClient) GetPayment(ctx context.Context, paymentID string) (PaymentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return PaymentRecord{}, err
	}

	var out PaymentRecord
	if err := c.do(req, &out); err != nil {
		return PaymentRecord{}, err
	}
	return out, nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Code != "" {
			return fmt.Errorf("%s (%s)", apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
