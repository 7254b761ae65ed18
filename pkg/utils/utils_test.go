package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, UniqueStrings([]string{" a", "b", "a ", "", "  "}))
	assert.Empty(t, UniqueStrings(nil))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("x", 1))
	assert.Equal(t, -2, ParseInt(" -2 ", 1))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "10.0.0.9", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(r))
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name  string   `json:"name" validate:"notblank"`
		Seats []string `json:"seats" validate:"required,min=1"`
		Note  *string  `json:"note" validate:"omitempty,max=3"`
	}

	long := "가나다라"
	errs := ValidateStruct(sample{Name: "  ", Seats: []string{}, Note: &long})
	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"seats": "Must contain at least 1 item(s)",
		"note":  "Maximum length is 3",
	}, errs)
	assert.Equal(t,
		"name: This field is required; note: Maximum length is 3; seats: Must contain at least 1 item(s)",
		FormatValidationErrors(errs))

	short := "가나"
	assert.Nil(t, ValidateStruct(sample{Name: "A", Seats: []string{"x"}, Note: &short}))
}
