package entity

import (
	"errors"
	"fmt"
)

// ErrValidation is the base for all input validation errors; handlers
// match it with errors.Is to map failures to a bad-request response.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmailInvalidLen    = fmt.Errorf("%w: email length exceeds 255 characters", ErrValidation)
	ErrEmailInvalidFormat = fmt.Errorf("%w: incorrect email format", ErrValidation)
)

// ErrAllSendsFailed means neither the internal notification nor the
// submitter confirmation could be delivered to the mail relay.
var ErrAllSendsFailed = errors.New("all email sends failed")
