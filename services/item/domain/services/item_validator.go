// Package services holds the item rules that need more than one field or
// more than the ItemName constructor checks.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/orderdesk/pkg/money"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

var (
	errNameBlank   = errors.New("item name must not be blank")
	errNamePadded  = errors.New("item name must not start or end with whitespace")
	errNameControl = errors.New("item name must not contain control characters")
	errNameSpacing = errors.New("item name must not contain consecutive spaces")
)

// ValidateName rejects names a catalog listing cannot display cleanly.
// Names built through NewItemName are already trimmed; the padding check
// covers values loaded from elsewhere.
func ValidateName(name models.ItemName) error {
	s := name.String()
	switch {
	case strings.TrimSpace(s) == "":
		return errNameBlank
	case strings.TrimSpace(s) != s:
		return errNamePadded
	}

	var prev rune
	for _, r := range s {
		if unicode.IsControl(r) {
			return errNameControl
		}
		if r == ' ' && prev == ' ' {
			return errNameSpacing
		}
		prev = r
	}
	return nil
}

// ValidateItem checks an Item before it is written.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}
	if err := ValidateName(item.Name); err != nil {
		return err
	}
	if err := money.ValidatePrice(item.Price); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	return nil
}
