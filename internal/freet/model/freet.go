package model

import (
	"time"

	"github.com/google/uuid"
	club "github.com/robertwachen/fritterfrontend/internal/club/model"
	user "github.com/robertwachen/fritterfrontend/internal/user/model"
)

const MaxContentLength = 140

type Freet struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Insertion order, breaks ties between equal UpdatedAt values
	Seq int64 `bun:",nullzero,notnull,type:bigserial"`

	AuthorID uuid.UUID  `bun:",notnull,type:uuid"`
	Author   *user.User `bun:"rel:belongs-to,join:author_id=id"`

	// nil for public freets
	ClubID *uuid.UUID `bun:",nullzero,type:uuid"`
	Club   *club.Club `bun:"rel:belongs-to,join:club_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (f *Freet) IsPublic() bool {
	return f.ClubID == nil
}
