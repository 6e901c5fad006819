package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     *tgbotapi.User
		expected string
	}{
		{
			name:     "full name",
			user:     &tgbotapi.User{FirstName: "Ahmed", LastName: "Ali"},
			expected: "Ahmed Ali",
		},
		{
			name:     "first name only",
			user:     &tgbotapi.User{FirstName: "Ahmed"},
			expected: "Ahmed",
		},
		{
			name:     "username fallback",
			user:     &tgbotapi.User{UserName: "ahmed_ali"},
			expected: "ahmed_ali",
		},
		{
			name:     "id fallback",
			user:     &tgbotapi.User{ID: 42},
			expected: "User_42",
		},
		{
			name:     "nil user",
			user:     nil,
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, displayName(tt.user))
		})
	}
}

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, isSpreadsheet("products.xlsx"))
	assert.True(t, isSpreadsheet("Products.XLSX"))
	assert.False(t, isSpreadsheet("products.csv"))
	assert.False(t, isSpreadsheet("products"))
	assert.False(t, isSpreadsheet("xlsx"))
}
