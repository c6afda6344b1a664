package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"renewal_automation/internal/usecase/interfaces"
)

// BraintreeTransport charges through the Braintree leg of the integration
// proxy. Dual Braintree/Stripe billings also charge here.
//
// Env vars:
//   - BRAINTREE_CHARGE_URL (default: http://localhost:9090/braintree/charge)
//   - GATEWAY_PROXY_TOKEN (optional bearer token)
//   - GATEWAY_TRANSPORT_MOCK (canned success response, local-friendly)

type BraintreeTransport struct {
	client   *gatewayClient
	mockMode bool
}

var _ interfaces.IGatewayTransport = (*BraintreeTransport)(nil)

func NewBraintreeTransport() *BraintreeTransport {
	if isGatewayTransportMockEnabled() {
		log.Printf("[payments][braintree] mock mode enabled")
		return &BraintreeTransport{mockMode: true}
	}
	return &BraintreeTransport{
		client: newGatewayClient("BRAINTREE", getenvDefault("BRAINTREE_CHARGE_URL", "http://localhost:9090/braintree/charge")),
	}
}

func (t *BraintreeTransport) Charge(ctx context.Context, billingID, accountID string, payload json.RawMessage) (json.RawMessage, error) {
	if t.mockMode {
		resp := fmt.Sprintf(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-mock-%d","status":"SUBMITTED_FOR_SETTLEMENT"}}}}`,
			time.Now().UTC().UnixNano())
		return json.RawMessage(resp), nil
	}
	return t.client.charge(ctx, billingID, accountID, payload)
}
