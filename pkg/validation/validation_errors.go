package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// User fields
	"Email":       "Email",
	"Password":    "Password",
	"FirstName":   "First name",
	"LastName":    "Last name",
	"Role":        "Role",
	"Title":       "Title",
	"Location":    "Location",
	"Description": "Description",

	// Post / message fields
	"UserID":     "User ID",
	"SenderID":   "Sender ID",
	"ReceiverID": "Receiver ID",
	"Text":       "Message text",

	// Job fields
	"Company":      "Company",
	"JobType":      "Job type",
	"SalaryRange":  "Salary range",
	"Requirements": "Requirements",

	// Project / experience fields
	"Topic":    "Topic",
	"Skills":   "Skills",
	"Year":     "Year",
	"FromYear": "From year",
	"ToYear":   "To year",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into one sentence-style string.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "uuid":
		return fmt.Sprintf("%s is not a valid identifier", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation (. ' - /)", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)

	case "max_current_year":
		return fmt.Sprintf("%s must not be later than the current year", label)

	case "gtefield":
		return fmt.Sprintf("%s must not be earlier than %s", label, getFieldLabel(param))

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
