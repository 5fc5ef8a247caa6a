package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{
			name:     "valid phone",
			input:    "0501234567",
			expected: "0501234567",
		},
		{
			name:     "valid phone with separators",
			input:    "050-123 4567",
			expected: "0501234567",
		},
		{
			name:      "too short",
			input:     "050123456",
			expectErr: true,
		},
		{
			name:      "too long",
			input:     "05012345678",
			expectErr: true,
		},
		{
			name:      "wrong prefix",
			input:     "0601234567",
			expectErr: true,
		},
		{
			name:      "non-numeric",
			input:     "05abc34567",
			expectErr: true,
		},
		{
			name:      "empty",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestValidateActivationCode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{
			name:     "valid code",
			input:    "0500001",
			expected: "0500001",
		},
		{
			name:     "valid code upper bound",
			input:    "0599999",
			expected: "0599999",
		},
		{
			name:      "phone-length input",
			input:     "0501234567",
			expectErr: true,
		},
		{
			name:      "wrong prefix",
			input:     "0400001",
			expectErr: true,
		},
		{
			name:      "empty",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateActivationCode(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******4567", MaskPhone("0501234567"))
	assert.Equal(t, "123", MaskPhone("123"))
}
