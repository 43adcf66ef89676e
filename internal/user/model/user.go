package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is a freets account. Its Username is what the author filter and the
// freet author field carry.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	Username string    `bun:",unique,notnull"`

	// Name is the display name, free to change
	Name string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
