package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultStripeAPIURL = "https://api.stripe.com"

// StripeGateway creates Stripe Checkout sessions over the form-encoded
// v1 API.
type StripeGateway struct {
	client *http.Client
}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{client: &http.Client{Timeout: 10 * time.Second}}
}

// getStripeConfig reads the gateway configuration from the environment at
// call time, so a misconfigured deployment fails on checkout rather than
// at boot.
func getStripeConfig() (secretKey, apiURL, currency string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = defaultStripeAPIURL
	}
	currency = os.Getenv("CHECKOUT_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	if secretKey == "" {
		return "", "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, apiURL, currency, nil
}

type stripeSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateCheckoutSession sends a session-create request to Stripe and
// returns the session handle plus hosted payment page URL.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req SessionRequest) (*Session, error) {
	secretKey, apiURL, currency, err := getStripeConfig()
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)

	for i, line := range req.Lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(line.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(line.Quantity))
		for j, img := range line.Images {
			form.Set(fmt.Sprintf("%s[price_data][product_data][images][%d]", prefix, j), img)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(apiURL, "/")+"/v1/checkout/sessions",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(secretKey, "")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var sessionResp stripeSessionResponse
	if err := json.Unmarshal(body, &sessionResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response (%d): %v", resp.StatusCode, err)
	}
	if sessionResp.Error != nil {
		return nil, fmt.Errorf("gateway error: %s", sessionResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway API error (%d): %s", resp.StatusCode, string(body))
	}
	if sessionResp.ID == "" || sessionResp.URL == "" {
		return nil, fmt.Errorf("gateway returned incomplete checkout session")
	}

	return &Session{ID: sessionResp.ID, URL: sessionResp.URL}, nil
}
