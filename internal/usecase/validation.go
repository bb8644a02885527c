package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput checks required fields are non-empty. No format
// validation: the landing-page inputs already constrain shape, and an odd
// email only costs us a bounced confirmation.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"firstName", "is required"})
	}
	if strings.TrimSpace(input.BusinessName) == "" {
		errs = append(errs, ValidationError{"businessName", "is required"})
	}
	if strings.TrimSpace(input.Location) == "" {
		errs = append(errs, ValidationError{"location", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	}

	return errs
}
