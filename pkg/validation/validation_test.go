package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email     string `validate:"required,email"`
	FirstName string `validate:"required,valid_name"`
	Role      string `validate:"omitempty,oneof=applicant recruiter"`
	Bio       string `validate:"no_emoji"`
	Year      int    `validate:"max_current_year"`
	FromYear  int
	ToYear    int `validate:"omitempty,gtefield=FromYear"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()

	err := v.Struct(sampleInput{
		FirstName: "R2D2 <script>",
		Role:      "admin",
		Bio:       "hello 😀",
		Year:      time.Now().Year() + 1,
		FromYear:  2020,
		ToYear:    2019,
	})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Contains(t, msgs, "Email is required")
	assert.Contains(t, msgs, "First name may only contain letters, spaces and common punctuation (. ' - /)")
	assert.Contains(t, msgs, "Role must be one of: applicant, recruiter")
	assert.Contains(t, msgs, "Bio must not contain emoji or special symbols")
	assert.Contains(t, msgs, "Year must not be later than the current year")
	assert.Contains(t, msgs, "To year must not be earlier than From year")
}

func TestValidInputPasses(t *testing.T) {
	v := New()
	err := v.Struct(sampleInput{
		Email:     "ada@example.com",
		FirstName: "Ada O'Neil",
		Role:      "recruiter",
		Year:      2001,
		FromYear:  2019,
		ToYear:    2021,
	})
	assert.NoError(t, err)
}

func TestMessageFallsBackForPlainErrors(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Salary Range Max", formatCamelCase("SalaryRangeMax"))
}
