package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,pond_email"`
	Phone    string `json:"phone" validate:"notblank,ten_digit_phone"`
	FarmSize string `json:"farmSize" validate:"farm_size"`
}

func validSample() sample {
	return sample{Name: "Ravi", Email: "ravi@farm.in", Phone: "98765 43210", FarmSize: "5-10"}
}

func TestIsEmail(t *testing.T) {
	valid := []string{"a@b.co", "ravi.kumar@farm.co.in", "x+y@d.tld"}
	invalid := []string{"not-an-email", "a@b", "@b.co", "a@.co", "a @b.co", "a@b.", "a@@b.co", " a@b.co"}

	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
	assert.Equal(t, "123456", NormalizePhone("abc-123-456"))
	assert.Equal(t, "", NormalizePhone("phone"))
}

func TestFieldErrorsRequiredBeforeFormat(t *testing.T) {
	v := New([]string{"1-5", "5-10"})

	errs, err := FieldErrors(v.Struct(sample{Email: "   ", Phone: "12"}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"name":     "Name is required",
		"email":    "Email is required",
		"phone":    "Please enter a valid 10-digit phone number",
		"farmSize": "Farm size is required",
	}, errs)
}

func TestFieldErrorsValidStruct(t *testing.T) {
	v := New([]string{"1-5", "5-10"})

	errs, err := FieldErrors(v.Struct(validSample()))
	require.NoError(t, err)
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestFarmSizeOutsideSet(t *testing.T) {
	v := New([]string{"1-5", "5-10"})
	s := validSample()
	s.FarmSize = "100+"

	errs, err := FieldErrors(v.Struct(s))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"farmSize": "Farm size is required"}, errs)
}

func TestFieldErrorsPassesThroughOtherErrors(t *testing.T) {
	v := New(nil)

	_, err := FieldErrors(v.Struct(42))
	assert.Error(t, err)
}
