package interfaces

import "context"

// IVerificationGuard claims a correlation id before the gateway round-trip so
// a pending payment is verified by at most one in-flight request.
//
// Claim returns false when another request already holds the claim.
type IVerificationGuard interface {
	Claim(ctx context.Context, correlationID string) (bool, error)
	Release(ctx context.Context, correlationID string) error
}
