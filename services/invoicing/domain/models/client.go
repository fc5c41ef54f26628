package models

import (
	"strings"
	"time"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Client is the party an invoice is issued to.
type Client struct {
	ID    int64
	Name  string
	Email string
	Phone *string
	audit.Stamp
}

// NewClient builds an unsaved Client created by actor at now. A blank
// phone is stored as nil.
func NewClient(name, email string, phone *string, actor string, now time.Time) *Client {
	c := &Client{Stamp: audit.New(actor, now)}
	c.set(name, email, phone)
	return c
}

// Replace overwrites every mutable field and records the update.
func (c *Client) Replace(name, email string, phone *string, actor string, now time.Time) {
	c.set(name, email, phone)
	c.Touch(actor, now)
}

func (c *Client) set(name, email string, phone *string) {
	c.Name = strings.TrimSpace(name)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = nil
	if phone != nil {
		if p := strings.TrimSpace(*phone); p != "" {
			c.Phone = &p
		}
	}
}
