package models

import (
	"strings"
	"time"

	"github.com/ghuser/orderdesk/pkg/audit"
)

// Message is a free-text note with no relations to other aggregates.
type Message struct {
	ID      int64
	Content string
	audit.Stamp
}

func NewMessage(content, actor string, now time.Time) *Message {
	return &Message{Content: strings.TrimSpace(content), Stamp: audit.New(actor, now)}
}

func (m *Message) Replace(content, actor string, now time.Time) {
	m.Content = strings.TrimSpace(content)
	m.Touch(actor, now)
}
