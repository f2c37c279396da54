package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-beauty/storefront-api/internal/config"
)

func newTestCheckoutClient(baseURL string) CheckoutClient {
	return NewCheckoutClient(&config.Checkout{
		BaseAPIURL: baseURL,
		SecretKey:  "sk_test_123",
		SuccessURL: "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://shop.example.com/cancel",
	})
}

func TestCreateSessionEncodesForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}", r.PostForm.Get("success_url"))
		assert.Equal(t, "ana@example.com", r.PostForm.Get("customer_email"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "1000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Rose Serum", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "42", r.PostForm.Get("metadata[orderId]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_test_abc",
			"url": "https://pay.example.com/cs_test_abc",
			"payment_status": "unpaid",
			"metadata": {"orderId": "42"}
		}`))
	}))
	defer srv.Close()

	session, err := newTestCheckoutClient(srv.URL).CreateSession(context.Background(), &CreateSessionParams{
		CustomerEmail: "ana@example.com",
		LineItems: []SessionLineItem{
			{Name: "Rose Serum", Currency: "usd", UnitAmount: 1000, Quantity: 2},
		},
		Metadata: map[string]string{"orderId": "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_test_abc", session.URL)
	assert.Equal(t, "unpaid", session.PaymentStatus)
	assert.Equal(t, "42", session.Metadata["orderId"])
}

func TestCreateSessionSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid API key"}}`))
	}))
	defer srv.Close()

	_, err := newTestCheckoutClient(srv.URL).CreateSession(context.Background(), &CreateSessionParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestRetrieveSessionParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_abc", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_test_abc",
			"payment_status": "paid",
			"payment_intent": "pi_test_1",
			"metadata": {"orderId": "42", "userId": "7"}
		}`))
	}))
	defer srv.Close()

	session, err := newTestCheckoutClient(srv.URL).RetrieveSession(context.Background(), "cs_test_abc")
	require.NoError(t, err)
	assert.Equal(t, "paid", session.PaymentStatus)
	assert.Equal(t, "pi_test_1", session.PaymentIntentID)
	assert.Equal(t, "42", session.Metadata["orderId"])
}

func TestRetrieveSessionMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestCheckoutClient(srv.URL).RetrieveSession(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
