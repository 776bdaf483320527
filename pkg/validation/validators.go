package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld: no whitespace or @ in any part, at least one dot after the @
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// PhoneDigits is the number of digits a contact phone must have after normalisation
const PhoneDigits = 10

// New returns a validator that reports fields by their json name and has the
// custom tags registered. allowedFarmSizes is the closed set accepted by farm_size.
func New(allowedFarmSizes []string) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v, allowedFarmSizes)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, allowedFarmSizes []string) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("pond_email", ValidEmail)
	_ = v.RegisterValidation("ten_digit_phone", TenDigitPhone)
	_ = v.RegisterValidation("farm_size", OneOfSet(allowedFarmSizes))
}

// NotBlank fails on strings that are empty after trimming whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidEmail checks the local@domain.tld shape. The value is matched as typed (untrimmed).
func ValidEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsEmail is ValidEmail for plain strings
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// TenDigitPhone strips every non-digit and requires exactly PhoneDigits to remain
func TenDigitPhone(fl validator.FieldLevel) bool {
	return len(NormalizePhone(fl.Field().String())) == PhoneDigits
}

// NormalizePhone keeps only ASCII digits: "(987) 654-3210" -> "9876543210"
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OneOfSet builds a validator accepting only the given values (exact match)
func OneOfSet(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// jsonFieldName reports fields by their json tag so errors key on "farmSize", not "FarmSize"
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return lowerFirst(fld.Name)
	}
	return name
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
