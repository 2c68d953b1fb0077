package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/prkservices/booking-service/internal/domain/repository"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// RazorpayGateway implements the PaymentGateway interface over the Razorpay
// REST API. Amounts are converted to paise on the wire.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewRazorpayGateway creates a gateway from API credentials
func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if strings.TrimSpace(keyID) == "" || strings.TrimSpace(keySecret) == "" {
		return nil, errors.New("razorpay credentials are not configured")
	}

	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

var _ repository.PaymentGateway = (*RazorpayGateway)(nil)

type orderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers a capture-on-payment order for the amount in rupees
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (string, error) {
	body, err := json.Marshal(orderRequest{
		Amount:         int64(math.Round(amount * 100)), // amount in paise
		Currency:       "INR",
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("razorpay order creation failed: status %d: %s", resp.StatusCode, raw)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", errors.New("razorpay order response missing id")
	}
	return order.ID, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderId|paymentId" with the
// key secret and compares it to the signature from the checkout callback.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
