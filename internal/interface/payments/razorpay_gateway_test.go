package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGateway(t *testing.T, srv *httptest.Server) *RazorpayGateway {
	t.Helper()
	g, err := NewRazorpayGateway("rzp_test_key", "rzp_test_secret")
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	if srv != nil {
		g.baseURL = srv.URL
	}
	return g
}

func TestNewRazorpayGateway_RequiresCredentials(t *testing.T) {
	if _, err := NewRazorpayGateway("", "secret"); err == nil {
		t.Fatal("expected error for empty key id")
	}
	if _, err := NewRazorpayGateway("key", "  "); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("sends paise amount with basic auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/orders" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
				t.Error("missing or wrong basic auth")
			}
			var req orderRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode order request: %v", err)
			}
			if req.Amount != 10900 {
				t.Errorf("expected 10900 paise, got %d", req.Amount)
			}
			if req.Currency != "INR" || req.Receipt != "b-1" || req.PaymentCapture != 1 {
				t.Errorf("unexpected order request: %+v", req)
			}
			json.NewEncoder(w).Encode(orderResponse{ID: "order_test123"})
		}))
		defer srv.Close()

		g := newTestGateway(t, srv)
		orderID, err := g.CreateOrder(context.Background(), 109, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != "order_test123" {
			t.Fatalf("expected order_test123, got %q", orderID)
		}
	})

	t.Run("fractional rupees round to whole paise", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req orderRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Amount != 10950 {
				t.Errorf("expected 10950 paise, got %d", req.Amount)
			}
			json.NewEncoder(w).Encode(orderResponse{ID: "order_test123"})
		}))
		defer srv.Close()

		g := newTestGateway(t, srv)
		if _, err := g.CreateOrder(context.Background(), 109.50, "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-200 response fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		g := newTestGateway(t, srv)
		if _, err := g.CreateOrder(context.Background(), 109, "b-1"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing order id fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		g := newTestGateway(t, srv)
		if _, err := g.CreateOrder(context.Background(), 109, "b-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestVerifySignature(t *testing.T) {
	g := newTestGateway(t, nil)

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte("order_test123|pay_abc"))
	good := hex.EncodeToString(mac.Sum(nil))

	if !g.VerifySignature("order_test123", "pay_abc", good) {
		t.Error("expected valid signature to pass")
	}
	if g.VerifySignature("order_test123", "pay_abc", "deadbeef") {
		t.Error("expected forged signature to fail")
	}
	if g.VerifySignature("order_other", "pay_abc", good) {
		t.Error("signature must be bound to the order id")
	}
	if g.VerifySignature("order_test123", "pay_other", good) {
		t.Error("signature must be bound to the payment id")
	}
}
