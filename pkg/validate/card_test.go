package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"Valid card number", "4561261212345467", true},
		{"Valid short number", "79927398713", true},
		{"Invalid checksum", "4561261212345464", false},
		{"Non-numeric", "not-a-card", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCardNumber(tt.number))
		})
	}
}
