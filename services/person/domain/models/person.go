package models

import (
	"strings"
	"time"
)

// Person is a customer who places orders.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewPerson builds an unsaved Person stamped with the current time.
// Names are trimmed and the email is trimmed and lower-cased.
func NewPerson(firstName, lastName, email string) *Person {
	p := &Person{CreatedAt: time.Now().UTC()}
	p.set(firstName, lastName, email)
	return p
}

// Replace overwrites every mutable field and stamps UpdatedAt.
func (p *Person) Replace(firstName, lastName, email string, now time.Time) {
	p.set(firstName, lastName, email)
	t := now.UTC()
	p.UpdatedAt = &t
}

func (p *Person) set(firstName, lastName, email string) {
	p.FirstName = strings.TrimSpace(firstName)
	p.LastName = strings.TrimSpace(lastName)
	p.Email = NormalizeEmail(email)
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
