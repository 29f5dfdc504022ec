package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// TestPad проверяет усечение и дополнение ячеек до ширины колонки
func TestPad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "short value is padded",
			input:    "usd",
			width:    5,
			expected: "usd  ",
		},
		{
			name:     "exact width unchanged",
			input:    "12345",
			width:    5,
			expected: "12345",
		},
		{
			name:     "long value truncated with ellipsis",
			input:    "123456789",
			width:    5,
			expected: "1234…",
		},
		{
			name:     "width one keeps single rune",
			input:    "abc",
			width:    1,
			expected: "a",
		},
		{
			name:     "cyrillic value padded by rune count",
			input:    "сумма",
			width:    7,
			expected: "сумма  ",
		},
		{
			name:     "cyrillic value truncated without splitting runes",
			input:    "квартира",
			width:    5,
			expected: "квар…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pad(tt.input, tt.width)

			// Усечение не должно разрезать multibyte-символ
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tt.expected, got)
		})
	}
}
