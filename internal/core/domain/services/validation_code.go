package services

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// ErrValidationCodeMismatch is returned when the code presented on handover
// does not match the code issued for the task.
var ErrValidationCodeMismatch = errors.New("validation code does not match")

// validationCodeLength is the number of characters in an issued code.
const validationCodeLength = 8

// validationCodeAlphabet holds the characters codes are drawn from. Uppercase
// letters and digits only, so the recipient can read the code out loud.
const validationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ValidationCodeIssuer is a domain service issuing and verifying the handover
// validation codes attached to delivery tasks. A fresh code is issued per
// task, including the auto-created pickup segment of a split trip.
type ValidationCodeIssuer struct{}

// NewValidationCodeIssuer creates a new ValidationCodeIssuer instance.
func NewValidationCodeIssuer() ValidationCodeIssuer {
	return ValidationCodeIssuer{}
}

// Issue generates a new 8-character validation code from a cryptographically
// secure source.
func (v ValidationCodeIssuer) Issue() (string, error) {
	buf := make([]byte, validationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate validation code: %w", err)
	}

	code := make([]byte, validationCodeLength)
	for i, b := range buf {
		code[i] = validationCodeAlphabet[int(b)%len(validationCodeAlphabet)]
	}
	return string(code), nil
}

// Verify checks the presented code against the issued one. The comparison is
// exact and case-sensitive.
func (v ValidationCodeIssuer) Verify(issued, presented string) error {
	if presented == "" {
		return errs.NewValueIsRequiredError("validationCode")
	}
	if subtle.ConstantTimeCompare([]byte(issued), []byte(presented)) != 1 {
		return errs.NewInvalidStateErrorWithCause(
			"presented validation code is not the issued one", ErrValidationCodeMismatch)
	}
	return nil
}
