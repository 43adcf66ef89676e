package feed

import (
	"context"

	"github.com/google/uuid"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

type FeedUsecase interface {
	// Resolve returns the freets viewer may see under filters, most
	// recently modified first. uuid.Nil is an anonymous viewer.
	Resolve(ctx context.Context, viewer uuid.UUID, filters FilterSet) ([]*Freet.Freet, error)
	// ResolveQuery parses an encoded filter set and resolves it.
	ResolveQuery(ctx context.Context, viewer uuid.UUID, rawQuery string) ([]*Freet.Freet, error)
}
