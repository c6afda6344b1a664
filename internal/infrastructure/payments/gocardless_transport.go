package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"renewal_automation/internal/usecase/interfaces"
)

// GoCardlessTransport charges through the GoCardless leg of the integration
// proxy.
//
// Env vars:
//   - GOCARDLESS_CHARGE_URL (default: http://localhost:9090/gocardless/charge)
//   - GATEWAY_PROXY_TOKEN (optional bearer token)
//   - GATEWAY_TRANSPORT_MOCK (canned success response, local-friendly)

type GoCardlessTransport struct {
	client   *gatewayClient
	mockMode bool
}

var _ interfaces.IGatewayTransport = (*GoCardlessTransport)(nil)

func NewGoCardlessTransport() *GoCardlessTransport {
	if isGatewayTransportMockEnabled() {
		log.Printf("[payments][gocardless] mock mode enabled")
		return &GoCardlessTransport{mockMode: true}
	}
	return &GoCardlessTransport{
		client: newGatewayClient("GOCARDLESS", getenvDefault("GOCARDLESS_CHARGE_URL", "http://localhost:9090/gocardless/charge")),
	}
}

func (t *GoCardlessTransport) Charge(ctx context.Context, billingID, accountID string, payload json.RawMessage) (json.RawMessage, error) {
	if t.mockMode {
		resp := fmt.Sprintf(`{"payments":{"id":"PM-mock-%d","status":"pending_submission","charge_date":"%s"}}`,
			time.Now().UTC().UnixNano(), time.Now().UTC().Format("2006-01-02"))
		return json.RawMessage(resp), nil
	}
	return t.client.charge(ctx, billingID, accountID, payload)
}
