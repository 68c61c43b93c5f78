package validation

import (
	"regexp"
	"strings"

	"lingopath/internal/domain"
	"lingopath/internal/dto"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates the registration request
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), minPasswordLength, maxPasswordLength))
	}

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	return errors
}

// ValidateLoginRequest validates the login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateSlug validates a slug path parameter
func (v *Validator) ValidateSlug(slug string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(slug) == "" {
		errors = append(errors, domain.NewMissingFieldError("slug"))
		return errors
	}
	if len(slug) > 100 || !slugPattern.MatchString(slug) {
		errors = append(errors, domain.NewInvalidFormatError("slug", slug))
	}

	return errors
}

// ValidateSubmitExamRequest validates a bulk exam submission
func (v *Validator) ValidateSubmitExamRequest(req *dto.SubmitExamRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Answers == nil {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates a single mission answer
func (v *Validator) ValidateSubmitAnswerRequest(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuestionNumber <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("question_number", req.QuestionNumber, 1, 1000))
	}
	if req.SelectedOptionIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("selected_option_index"))
	} else if *req.SelectedOptionIndex < 0 {
		errors = append(errors, domain.NewOutOfRangeError("selected_option_index", *req.SelectedOptionIndex, 0, 100))
	}

	return errors
}
