// Package clients holds the outbound HTTP plumbing shared by every
// downstream adapter (AI model, feature flags). It deals purely in
// transport failures; translating those into domain errors is the job
// of the anti-corruption layer in the acl subpackage.
package clients

import "errors"

var (
	// ErrCircuitOpen signals that the breaker is rejecting calls to an
	// unhealthy downstream.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once the
	// retry budget is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
