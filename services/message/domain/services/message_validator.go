// Package services contains stateless domain services for messages.
package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ghuser/orderdesk/services/message/domain/models"
)

const maxContentLength = 4000

// ValidateMessage requires non-blank content of bounded length.
func ValidateMessage(m *models.Message) error {
	if m == nil {
		return errors.New("message cannot be nil")
	}
	if m.Content == "" {
		return errors.New("content is required")
	}
	if n := utf8.RuneCountInString(m.Content); n > maxContentLength {
		return fmt.Errorf("content must not exceed %d characters, got %d", maxContentLength, n)
	}
	return nil
}
