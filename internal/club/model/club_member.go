package model

import (
	"time"

	"github.com/google/uuid"
	user "github.com/robertwachen/fritterfrontend/internal/user/model"
)

type MemberStatus string

const (
	StatusMember  MemberStatus = "member"
	StatusPending MemberStatus = "pending" // invited or requested, not admitted yet
)

// One row per (club, user), so a user is never both member and pending.
type ClubMember struct {
	ClubID uuid.UUID `bun:",pk,type:uuid"`
	Club   *Club     `bun:"rel:belongs-to,join:club_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Status MemberStatus `bun:",notnull,default:'member'"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
