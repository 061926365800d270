package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "secret123"

	hashed, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, hashed)

	assert.True(t, VerifyPassword(password, hashed))
	assert.False(t, VerifyPassword("wrong123", hashed))
	assert.False(t, VerifyPassword(password, "not-a-hash"))
}

func TestIsPasswordValid(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "abc12345", false},
		{"too short", "a1", true},
		{"too long", strings.Repeat("a", 72) + "1", true},
		{"no number", "abcdefgh", true},
		{"no letter", "12345678", true},
		{"mixed case valid", "Passw0rdOk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsPasswordValid(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashPasswordRejectsWeakInput(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}
