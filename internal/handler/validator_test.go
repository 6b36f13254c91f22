package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
)

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_BetValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		bet     int
		wantErr bool
	}{
		// CASE 1: Best Case
		{"typical bet", 50, false},
		{"large bet", 1_000_000, false},

		// CASE 2: Boundary Case
		{"just below minimum", domain.MinBet - 1, true},
		{"exactly minimum", domain.MinBet, false},

		// CASE 4: Invalid Case
		{"zero", 0, true},
		{"negative", -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(WagerRequest{UserID: "u1", Bet: tt.bet})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindInvalidBet, validationKind(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_BombRange(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		bombs   int
		wantErr bool
	}{
		{"below range", 2, true},
		{"lower bound", 3, false},
		{"upper bound", 10, false},
		{"above range", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(MinebombStartRequest{UserID: "u1", Bet: 10, Bombs: tt.bombs})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindInvalidParameters, validationKind(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	InitValidator()
	v := GetValidator()

	err := v.ValidateStruct(RouletteSpinRequest{Bet: 5, Mode: "dozen"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["user_id"])
	assert.Equal(t, "Must be at least 10", fields["bet"])
	assert.Equal(t, "Must be one of: color number", fields["mode"])
	assert.Equal(t, "This field is required", fields["choice"])

	// a bad bet anywhere in the request wins the classification
	assert.Equal(t, domain.KindInvalidBet, validationKind(err))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
	assert.Equal(t, domain.KindInvalidParameters, validationKind(errors.New("boom")))
}
