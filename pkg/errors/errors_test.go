package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "validation", err: NewValidationError("no services selected"), want: ErrorTypeValidation},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NewNotFoundError("booking not found")), want: ErrorTypeNotFound},
		{name: "plain error", err: fmt.Errorf("boom"), want: ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(NewConflictError("booking is not pending"), ErrorTypeConflict))
	assert.False(t, IsType(nil, ErrorTypeConflict))
	assert.False(t, IsType(NewValidationError("x"), ErrorTypeConflict))
}

func TestMessageOf(t *testing.T) {
	err := NewExternalError("location unavailable", fmt.Errorf("timeout"))
	assert.Equal(t, "location unavailable", MessageOf(err))
	assert.Equal(t, "EXTERNAL: location unavailable: timeout", err.Error())
	assert.Equal(t, "raw", MessageOf(fmt.Errorf("raw")))
}
