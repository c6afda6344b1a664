package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"renewal_automation/internal/usecase/interfaces"
)

// StripeTransport charges through the Stripe leg of the integration proxy.
//
// Env vars:
//   - STRIPE_CHARGE_URL (default: http://localhost:9090/stripe/charge)
//   - GATEWAY_PROXY_TOKEN (optional bearer token)
//   - GATEWAY_TRANSPORT_MOCK (canned success response, local-friendly)

type StripeTransport struct {
	client   *gatewayClient
	mockMode bool
}

var _ interfaces.IGatewayTransport = (*StripeTransport)(nil)

func NewStripeTransport() *StripeTransport {
	if isGatewayTransportMockEnabled() {
		log.Printf("[payments][stripe] mock mode enabled")
		return &StripeTransport{mockMode: true}
	}
	return &StripeTransport{
		client: newGatewayClient("STRIPE", getenvDefault("STRIPE_CHARGE_URL", "http://localhost:9090/stripe/charge")),
	}
}

func (t *StripeTransport) Charge(ctx context.Context, billingID, accountID string, payload json.RawMessage) (json.RawMessage, error) {
	if t.mockMode {
		resp := fmt.Sprintf(`{"id":"ch_mock_%d","status":"succeeded"}`, time.Now().UTC().UnixNano())
		return json.RawMessage(resp), nil
	}
	return t.client.charge(ctx, billingID, accountID, payload)
}
