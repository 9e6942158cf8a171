// File: utils/phone_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ten digits gets country code", "5551234567", "+15551234567"},
		{"formatted ten digits", "(555) 123-4567", "+15551234567"},
		{"eleven digits starting with one", "15551234567", "+15551234567"},
		{"already canonical", "+15551234567", "+15551234567"},
		{"dots and spaces", "555.123.4567", "+15551234567"},
		{"international number kept verbatim", "+44 20 7946 0958", "+442079460958"},
		{"short garbage gets plus prefix", "12345", "+12345"},
		{"empty input", "", "+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"5551234567", "(555) 123-4567", "+15551234567", "+44 20 7946 0958"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "normalizing %q twice changed the result", in)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("5551234567"))
	assert.True(t, ValidPhone("+15551234567"))
	assert.True(t, ValidPhone("+442079460958"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone(""))
	assert.False(t, ValidPhone("not a phone"))
}

func TestValidateBusinessRow(t *testing.T) {
	assert.NoError(t, ValidateBusinessRow(1, "Joe's Diner", "5551234567"))

	err := ValidateBusinessRow(3, "J", "5551234567")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "name")

	err = ValidateBusinessRow(7, "Joe's Diner", "123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), "phone")
}
