package payments

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	config "github.com/musicplanet/server/configs"
)

const defaultStripeAPIBase = "https://api.stripe.com"

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func stripeAPIBase() string {
	if base := config.Config("STRIPE_API_BASE_URL"); base != "" {
		return base
	}
	return defaultStripeAPIBase
}

// CreatePaymentIntent reserves a charge with Stripe and returns the
// client secret the frontend needs to complete the payment. Nothing is
// persisted on our side.
func CreatePaymentIntent(amountMinorUnits int64, currency string) (*PaymentIntent, error) {
	secretKey := config.Config("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/payment_intents", stripeAPIBase()), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to create payment intent, status: %s", resp.Status)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}

	return &intent, nil
}
