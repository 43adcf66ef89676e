package model

import (
	"time"

	"github.com/google/uuid"
)

// Discourse is a time boxed competition between two or more clubs.
type Discourse struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	StartDate time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	EndDate   time.Time `bun:",notnull"`

	// Club names as entered, trimmed
	Clubs []string `bun:",array,notnull"`
}

func (d *Discourse) Active(now time.Time) bool {
	return !now.Before(d.StartDate) && now.Before(d.EndDate)
}
