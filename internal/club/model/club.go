package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	user "github.com/robertwachen/fritterfrontend/internal/user/model"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
	PrivacySecret  Privacy = "secret"
)

func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyPrivate, PrivacySecret:
		return true
	}
	return false
}

type Club struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Unique ignoring case, see the lower(name) index
	Name    string  `bun:",notnull"`
	Privacy Privacy `bun:",notnull,default:'public'"`
	Rules   string  `bun:",notnull"`

	OwnerID uuid.UUID  `bun:",notnull,type:uuid"`
	Owner   *user.User `bun:"rel:belongs-to,join:owner_id=id"`

	Members []*ClubMember `bun:"rel:has-many,join:id=club_id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (c *Club) IsPublic() bool {
	return c.Privacy == PrivacyPublic
}

// SameName compares club names the way lookups do.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
