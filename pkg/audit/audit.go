// Package audit carries the created/updated bookkeeping shared by every
// audited entity.
package audit

import "time"

// Anonymous is recorded when a request carries no session actor.
const Anonymous = "anonymous"

// Stamp is the set of audit columns stored next to each audited row.
type Stamp struct {
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy *string
	UpdatedAt *time.Time
}

// New returns a creation stamp for actor at now. An empty actor is recorded
// as Anonymous.
func New(actor string, now time.Time) Stamp {
	return Stamp{CreatedBy: normalize(actor), CreatedAt: now.UTC()}
}

// Touch records an update by actor at now, leaving the creation fields alone.
func (s *Stamp) Touch(actor string, now time.Time) {
	a := normalize(actor)
	t := now.UTC()
	s.UpdatedBy = &a
	s.UpdatedAt = &t
}

func normalize(actor string) string {
	if actor == "" {
		return Anonymous
	}
	return actor
}
