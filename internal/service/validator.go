package service

import (
	"regexp"
	"strings"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
)

const EmailMaxLen = 255

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrEmailInvalidFormat
	}

	if strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

// Validate checks a submission before any send is attempted, so that a
// rejected request produces zero network side effects. Only the email
// address is constrained; name, company and message pass through as
// given and render exactly as submitted.
func Validate(c entity.Consultation) error {
	return ValidateEmail(c.Email)
}
