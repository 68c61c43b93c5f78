package validation

import (
	"strings"
	"testing"

	"lingopath/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateRegisterRequest(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
		Name:     "User",
	})
	assert.Empty(t, errs)

	errs = v.ValidateRegisterRequest(&dto.RegisterRequest{})
	assert.Len(t, errs, 3)

	errs = v.ValidateRegisterRequest(&dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "User",
	})
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)

	errs = v.ValidateRegisterRequest(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: strings.Repeat("x", 73),
		Name:     "User",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestValidateSlug(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSlug("present-simple"))
	assert.Empty(t, v.ValidateSlug("numbers_1"))

	assert.NotEmpty(t, v.ValidateSlug(""))
	assert.NotEmpty(t, v.ValidateSlug("Has Spaces"))
	assert.NotEmpty(t, v.ValidateSlug("UPPER"))
	assert.NotEmpty(t, v.ValidateSlug(strings.Repeat("a", 101)))
}

func TestValidateSubmitAnswerRequest(t *testing.T) {
	v := NewValidator()

	zero := 0
	negative := -1

	// Option index 0 is a legal answer and must pass.
	assert.Empty(t, v.ValidateSubmitAnswerRequest(&dto.SubmitAnswerRequest{
		QuestionNumber:      1,
		SelectedOptionIndex: &zero,
	}))

	errs := v.ValidateSubmitAnswerRequest(&dto.SubmitAnswerRequest{})
	assert.Len(t, errs, 2)

	errs = v.ValidateSubmitAnswerRequest(&dto.SubmitAnswerRequest{
		QuestionNumber:      1,
		SelectedOptionIndex: &negative,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "selected_option_index", errs[0].Field)
}

func TestValidateSubmitExamRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitExamRequest(&dto.SubmitExamRequest{
		Answers: map[string]string{"1": "went"},
	}))
	// An empty map is a deliberate blank submission; only nil is rejected.
	assert.Empty(t, v.ValidateSubmitExamRequest(&dto.SubmitExamRequest{
		Answers: map[string]string{},
	}))
	assert.NotEmpty(t, v.ValidateSubmitExamRequest(&dto.SubmitExamRequest{}))
}
