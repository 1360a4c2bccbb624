// Package flags implements the feature flag port on static configuration.
// Flags are read once at startup; a hosted provider (LaunchDarkly,
// Unleash) would slot in behind the same port without touching callers.
package flags

import (
	"context"
	"encoding/json"
	"fmt"
)

// Static evaluates flags from a fixed map loaded from configuration.
type Static struct {
	values map[string]any
}

// NewStatic creates a static flag provider. A nil map means every
// lookup falls back to its default.
func NewStatic(values map[string]any) *Static {
	if values == nil {
		values = map[string]any{}
	}

	return &Static{values: values}
}

// IsEnabled implements ports.FeatureFlags.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if v, ok := s.values[flag].(bool); ok {
		return v
	}

	return defaultValue
}

// GetString implements ports.FeatureFlags.
func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	if v, ok := s.values[flag].(string); ok {
		return v
	}

	return defaultValue
}

// GetInt implements ports.FeatureFlags.
func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	switch v := s.values[flag].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// GetFloat implements ports.FeatureFlags.
func (s *Static) GetFloat(_ context.Context, flag string, defaultValue float64) float64 {
	switch v := s.values[flag].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return defaultValue
	}
}

// GetJSON implements ports.FeatureFlags.
func (s *Static) GetJSON(_ context.Context, flag string, target any) error {
	v, ok := s.values[flag]
	if !ok {
		return fmt.Errorf("flag %q not found", flag)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding flag %q: %w", flag, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding flag %q: %w", flag, err)
	}

	return nil
}
