package payments

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "sk_test_123", user)

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":   r.PostForm.Get("amount"),
			"currency": r.PostForm.Get("currency"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	defer server.Close()

	t.Setenv("STRIPE_API_BASE_URL", server.URL)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	intent, err := CreatePaymentIntent(5000, "usd")
	require.NoError(t, err)
	require.Equal(t, "pi_123_secret_456", intent.ClientSecret)
	require.Equal(t, "5000", gotForm["amount"])
	require.Equal(t, "usd", gotForm["currency"])
}

func TestCreatePaymentIntent_MissingKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := CreatePaymentIntent(5000, "usd")
	require.Error(t, err)
}

func TestCreatePaymentIntent_GatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	t.Setenv("STRIPE_API_BASE_URL", server.URL)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	_, err := CreatePaymentIntent(5000, "usd")
	require.Error(t, err)
}
