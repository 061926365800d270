package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfigKey(t *testing.T) {
	valid := []string{
		"site_name",
		"registration.enabled",
		"quiz.default_duration",
		"a.b.c",
		"x9",
	}
	for _, key := range valid {
		assert.NoError(t, ValidateConfigKey(key), key)
	}

	invalid := []string{
		"",
		"   ",
		"Site_Name",
		"9lives",
		".leading",
		"trailing.",
		"double..dot",
		"spa ce",
		"dash-key",
	}
	for _, key := range invalid {
		assert.Error(t, ValidateConfigKey(key), key)
	}
}
