// Package services contains stateless domain services for the person bounded context.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/orderdesk/services/person/domain/models"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
)

// ValidatePerson enforces the field rules for a Person about to be saved:
//   - first and last name present, at most 100 characters, no control characters
//   - email present, at most 255 characters, exactly one '@' with text on both sides
func ValidatePerson(p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person cannot be nil")
	}
	if err := validateName("first_name", p.FirstName); err != nil {
		return err
	}
	if err := validateName("last_name", p.LastName); err != nil {
		return err
	}
	return validateEmail(p.Email)
}

func validateName(field, s string) error {
	if s == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len([]rune(s)) > maxNameLength {
		return fmt.Errorf("%s must not exceed %d characters", field, maxNameLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}

func validateEmail(s string) error {
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if len(s) > maxEmailLength {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(s, " \t") {
		return fmt.Errorf("email %q is not a valid address", s)
	}
	return nil
}
