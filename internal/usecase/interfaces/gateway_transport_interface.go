package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=gateway_transport_interface.go -destination=mocks/gateway_transport_mock.go -package=mock_interfaces

// IGatewayTransport abstracts the remote charge call for one payment gateway.
//
// The payload is the bit-exact gateway request body built by the adapter.
// Billing and account ids travel alongside it so the integration proxy can
// reconcile the charge against the backing store (GoCardless payloads do not
// carry them).
//
// A non-nil error is a transport failure (network, auth, malformed request).
// A gateway-reported business failure arrives as a normal response body and
// is interpreted downstream.
type IGatewayTransport interface {
	Charge(ctx context.Context, billingID, accountID string, payload json.RawMessage) (json.RawMessage, error)
}
