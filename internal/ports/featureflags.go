package ports

import (
	"context"
)

// FeatureFlags is the flag evaluation contract. The application layer
// checks behavior toggles through this port without knowing the
// provider; the current adapter reads static values from configuration,
// and a hosted provider can slot in behind the same interface.
//
// Every getter takes a default so a missing or mistyped flag degrades
// to known behavior rather than failing the request:
//
//	if s.flags.IsEnabled(ctx, "allow-non-draft-edits", false) {
//	    // permit item edits on sent quotes
//	}
type FeatureFlags interface {
	// IsEnabled evaluates a boolean flag, falling back to defaultValue
	// when the flag is missing or not a bool.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool

	// GetString evaluates a string flag with a fallback.
	GetString(ctx context.Context, flag string, defaultValue string) string

	// GetInt evaluates an integer flag with a fallback.
	GetInt(ctx context.Context, flag string, defaultValue int) int

	// GetFloat evaluates a float flag with a fallback, e.g. for
	// adjustable thresholds.
	GetFloat(ctx context.Context, flag string, defaultValue float64) float64

	// GetJSON unmarshals a structured flag into target. Unlike the
	// scalar getters this returns an error, since there is no sensible
	// zero value for arbitrary structures.
	GetJSON(ctx context.Context, flag string, target any) error
}

// FeatureFlagUser carries caller identity for targeted evaluation,
// e.g. enabling a flag for specific users or plans.
type FeatureFlagUser struct {
	// ID is the user identifier, matching Claims.Subject.
	ID string

	// Anonymous marks unauthenticated callers.
	Anonymous bool

	// Attributes are provider-specific targeting inputs,
	// e.g. {"plan": "enterprise"}.
	Attributes map[string]any
}

type featureFlagUserKey struct{}

// FeatureFlagUserKey stores and retrieves FeatureFlagUser on a context.
var FeatureFlagUserKey = featureFlagUserKey{}

// WithFeatureFlagUser attaches the caller for targeted evaluation.
func WithFeatureFlagUser(ctx context.Context, user *FeatureFlagUser) context.Context {
	return context.WithValue(ctx, FeatureFlagUserKey, user)
}

// GetFeatureFlagUser returns the attached caller, or nil.
func GetFeatureFlagUser(ctx context.Context) *FeatureFlagUser {
	if user, ok := ctx.Value(FeatureFlagUserKey).(*FeatureFlagUser); ok {
		return user
	}

	return nil
}
