package discourse

import (
	"context"

	"github.com/google/uuid"
	Discourse "github.com/robertwachen/fritterfrontend/internal/discourse/model"
)

type DiscourseRepository interface {
	CreateDiscourse(ctx context.Context, discourse *Discourse.Discourse) error
	GetDiscourseByID(ctx context.Context, id uuid.UUID) (*Discourse.Discourse, error)
	UpdateDiscourse(ctx context.Context, discourse *Discourse.Discourse) error
	DeleteDiscourse(ctx context.Context, id uuid.UUID) error
}
