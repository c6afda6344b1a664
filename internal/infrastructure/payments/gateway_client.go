package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"renewal_automation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// gatewayClient is the HTTP plumbing shared by the three gateway transports.
//
// Charges go through the integration proxy, which owns gateway credentials
// and writes the authoritative billing state back to the store. The proxy
// receives the bit-exact gateway payload as the request body; billing and
// account ids travel as headers so GoCardless payloads stay untouched.
type gatewayClient struct {
	gateway    string
	chargeURL  string
	authToken  string
	httpClient *http.Client
}

func newGatewayClient(gateway, chargeURL string) *gatewayClient {
	return &gatewayClient{
		gateway:   gateway,
		chargeURL: chargeURL,
		authToken: os.Getenv("GATEWAY_PROXY_TOKEN"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *gatewayClient) charge(ctx context.Context, billingID, accountID string, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chargeURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Billing-Id", billingID)
	req.Header.Set("X-Account-Id", accountID)
	req.Header.Set("Idempotency-Key", uuid.NewString())
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	log.Printf("[payments][transport] charge start gateway=%s billing_id=%s payload_len=%d", c.gateway, billingID, len(payload))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[payments][transport] charge request failed gateway=%s billing_id=%s err=%v", c.gateway, billingID, err)
		return nil, &interfaces.TransportError{Gateway: c.gateway, StatusText: "Unknown Error", Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &interfaces.TransportError{Gateway: c.gateway, StatusCode: resp.StatusCode, StatusText: resp.Status, Body: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[payments][transport] charge rejected gateway=%s billing_id=%s status=%d", c.gateway, billingID, resp.StatusCode)
		return nil, &interfaces.TransportError{
			Gateway:    c.gateway,
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       errorBodyMessage(body),
		}
	}

	log.Printf("[payments][transport] charge response gateway=%s billing_id=%s status=%d body_len=%d", c.gateway, billingID, resp.StatusCode, len(body))
	return body, nil
}

// errorBodyMessage extracts a {"message": "..."} body when present so the
// notification carries the collaborator's own wording.
func errorBodyMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}

func isGatewayTransportMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("GATEWAY_TRANSPORT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
