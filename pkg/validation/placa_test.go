package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPlaca(t *testing.T) {
	tests := []struct {
		name  string
		placa string
		valid bool
	}{
		{
			name:  "three digits with hyphen",
			placa: "ABC-123",
			valid: true,
		},
		{
			name:  "three digits without hyphen",
			placa: "ABC123",
			valid: true,
		},
		{
			name:  "four digits with hyphen",
			placa: "ABC-1234",
			valid: true,
		},
		{
			name:  "four digits without hyphen",
			placa: "ABC1234",
			valid: true,
		},
		{
			name:  "motorcycle plate with hyphen",
			placa: "ABC-12A",
			valid: true,
		},
		{
			name:  "motorcycle plate without hyphen",
			placa: "ABC12A",
			valid: true,
		},
		{
			name:  "lowercase is uppercased",
			placa: "abc123",
			valid: true,
		},
		{
			name:  "spaces are stripped",
			placa: "ABC 123",
			valid: true,
		},
		{
			name:  "identical letters rejected",
			placa: "AAA123",
			valid: false,
		},
		{
			name:  "identical letters with hyphen rejected",
			placa: "BBB-123",
			valid: false,
		},
		{
			name:  "too few letters",
			placa: "AB-123",
			valid: false,
		},
		{
			name:  "too many letters",
			placa: "ABCD123",
			valid: false,
		},
		{
			name:  "too few digits",
			placa: "AB1",
			valid: false,
		},
		{
			name:  "five digits",
			placa: "ABC-12345",
			valid: false,
		},
		{
			name:  "digits before letters",
			placa: "123ABC",
			valid: false,
		},
		{
			name:  "empty string",
			placa: "",
			valid: false,
		},
		{
			name:  "hyphen only",
			placa: "-",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPlaca(tt.placa))
		})
	}
}

func TestValidPlacaMotorcycleTrailingLetterIdentical(t *testing.T) {
	// The trailing letter of a motorcycle plate counts towards the identical
	// letter check: ABC12A has letters A, B, C, A and passes, AAA12A fails.
	assert.True(t, ValidPlaca("ABC12A"))
	assert.False(t, ValidPlaca("AAA12A"))
}
