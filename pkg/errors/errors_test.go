package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsType_FindsWrappedAppError(t *testing.T) {
	base := NewExternalError("nearby search failed", context.DeadlineExceeded)
	wrapped := fmt.Errorf("aggregate: %w", base)

	assert.True(t, IsType(wrapped, ErrorTypeExternal))
	assert.False(t, IsType(wrapped, ErrorTypeValidation))
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
}

func TestNewConfigurationError_NamesSetting(t *testing.T) {
	err := NewConfigurationError("GOOGLE_MAPS_API_KEY")

	assert.Equal(t, "missing_env_GOOGLE_MAPS_API_KEY", err.Message)
	assert.Equal(t, "CONFIGURATION: missing_env_GOOGLE_MAPS_API_KEY", err.Error())
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(fmt.Errorf("boom"))
	assert.False(t, ok)
}
