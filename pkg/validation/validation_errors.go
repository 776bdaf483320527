package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to the labels used in messages
var FieldLabels = map[string]string{
	"name":     "Name",
	"email":    "Email",
	"phone":    "Phone number",
	"farmSize": "Farm size",
	"message":  "Message",
}

// FormatMessages are the format-rule messages, keyed by tag
var FormatMessages = map[string]string{
	"pond_email":      "Please enter a valid email",
	"ten_digit_phone": fmt.Sprintf("Please enter a valid %d-digit phone number", PhoneDigits),
}

// requiredTags are rules that mean "nothing usable was entered"
var requiredTags = map[string]bool{
	"required":  true,
	"notblank":  true,
	"farm_size": true,
}

// FieldErrors converts validator.ValidationErrors into field -> message.
// A nil error gives an empty, non-nil map. Other errors are returned unchanged.
func FieldErrors(err error) (map[string]string, error) {
	out := map[string]string{}
	if err == nil {
		return out, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	for _, e := range validationErrors {
		// validator reports the first failing tag per field, so required wins over format
		out[e.Field()] = formatSingleError(e)
	}
	return out, nil
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	tag := e.Tag()

	if requiredTags[tag] {
		return fmt.Sprintf("%s is required", label)
	}
	if msg, ok := FormatMessages[tag]; ok {
		return msg
	}
	// Fallback for unknown tags
	return fmt.Sprintf("%s is invalid", label)
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
