package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_IsEnabled(t *testing.T) {
	provider := NewStatic(map[string]any{
		"on":         true,
		"off":        false,
		"not-a-bool": "yes",
	})

	ctx := context.Background()

	assert.True(t, provider.IsEnabled(ctx, "on", false))
	assert.False(t, provider.IsEnabled(ctx, "off", true))
	assert.True(t, provider.IsEnabled(ctx, "missing", true), "missing flag falls back to default")
	assert.False(t, provider.IsEnabled(ctx, "not-a-bool", false), "wrong type falls back to default")
}

func TestStatic_GetString(t *testing.T) {
	provider := NewStatic(map[string]any{"mode": "strict"})

	ctx := context.Background()

	assert.Equal(t, "strict", provider.GetString(ctx, "mode", "lenient"))
	assert.Equal(t, "lenient", provider.GetString(ctx, "missing", "lenient"))
}

func TestStatic_GetInt(t *testing.T) {
	// Koanf hands numeric flag values over as int, int64, or float64
	// depending on the source, so all three must resolve.
	provider := NewStatic(map[string]any{
		"int":     42,
		"int64":   int64(43),
		"float64": float64(44),
		"string":  "45",
	})

	ctx := context.Background()

	assert.Equal(t, 42, provider.GetInt(ctx, "int", 0))
	assert.Equal(t, 43, provider.GetInt(ctx, "int64", 0))
	assert.Equal(t, 44, provider.GetInt(ctx, "float64", 0))
	assert.Equal(t, 7, provider.GetInt(ctx, "string", 7))
	assert.Equal(t, 7, provider.GetInt(ctx, "missing", 7))
}

func TestStatic_GetFloat(t *testing.T) {
	provider := NewStatic(map[string]any{
		"float": 0.25,
		"int":   3,
	})

	ctx := context.Background()

	assert.Equal(t, 0.25, provider.GetFloat(ctx, "float", 0))
	assert.Equal(t, 3.0, provider.GetFloat(ctx, "int", 0))
	assert.Equal(t, 1.5, provider.GetFloat(ctx, "missing", 1.5))
}

func TestStatic_GetJSON(t *testing.T) {
	provider := NewStatic(map[string]any{
		"limits": map[string]any{"max_items": 50, "max_quantity": 999},
	})

	var target struct {
		MaxItems    int `json:"max_items"`
		MaxQuantity int `json:"max_quantity"`
	}

	require.NoError(t, provider.GetJSON(context.Background(), "limits", &target))
	assert.Equal(t, 50, target.MaxItems)
	assert.Equal(t, 999, target.MaxQuantity)
}

func TestStatic_GetJSON_MissingFlag(t *testing.T) {
	provider := NewStatic(nil)

	var target map[string]any
	err := provider.GetJSON(context.Background(), "missing", &target)
	require.Error(t, err)
}
