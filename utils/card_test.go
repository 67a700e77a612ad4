package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCardNumber(t *testing.T) {
	assert.Equal(t, "4111111111111111", NormalizeCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "4111111111111111", NormalizeCardNumber("4111111111111111"))
	assert.Equal(t, "", NormalizeCardNumber("   "))
}

func TestValidCardNumber(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"4111 1111 1111 1111", true},
		{"4111111111111111", true},
		{"4111 1111 1111", false},
		{"4111 1111 1111 11111", false},
		{"4111 1111 1111 111a", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidCardNumber(tc.in), "card %q", tc.in)
	}
}

func TestValidExpiryFormat(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"08/27", true},
		{"13/25", true}, // format only; the month range is checked separately
		{"8/27", false},
		{"08/2027", false},
		{"0827", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidExpiryFormat(tc.in), "expiry %q", tc.in)
	}
}

func TestExpiryMonth(t *testing.T) {
	month, ok := ExpiryMonth("08/27")
	assert.True(t, ok)
	assert.Equal(t, 8, month)

	_, ok = ExpiryMonth("13/25")
	assert.False(t, ok)

	_, ok = ExpiryMonth("00/25")
	assert.False(t, ok)

	month, ok = ExpiryMonth("12/30")
	assert.True(t, ok)
	assert.Equal(t, 12, month)
}

func TestValidCVV(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"123", true},
		{"1234", true},
		{"12", false},
		{"12345", false},
		{"12a", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidCVV(tc.in), "cvv %q", tc.in)
	}
}
