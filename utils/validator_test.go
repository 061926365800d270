package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateRoleName(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.RegisterValidation("role_name", ValidateRoleName))

	type payload struct {
		Role string `validate:"role_name"`
	}

	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"lecturer", true},
		{"student", true},
		{"superuser", false},
		{"Admin", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			err := v.Struct(payload{Role: tt.role})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePositiveIDs(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.RegisterValidation("positive_ids", ValidatePositiveIDs))

	type payload struct {
		IDs []int `validate:"positive_ids"`
	}

	assert.NoError(t, v.Struct(payload{IDs: []int{1, 2, 3}}))
	assert.NoError(t, v.Struct(payload{IDs: nil}))
	assert.Error(t, v.Struct(payload{IDs: []int{1, 0, 3}}))
	assert.Error(t, v.Struct(payload{IDs: []int{-5}}))
}
