package club

import (
	"time"

	"github.com/google/uuid"
	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
)

// Input commands
type CreateClubCommand struct {
	Name    string       `json:"clubName" validate:"required,clubname"`
	Privacy Club.Privacy `json:"privacy" validate:"required,oneof=public private secret"`
	Rules   *string      `json:"rules" validate:"omitempty,min=1"`
}

type UpdateClubCommand struct {
	Privacy Club.Privacy `json:"privacy" validate:"omitempty,oneof=public private secret"`
	Rules   *string      `json:"rules" validate:"omitempty,min=1"`
}

// Output DTOs
type ClubDTO struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"clubName"`
	Privacy        Club.Privacy `json:"privacy"`
	Rules          string       `json:"rules"`
	OwnerID        uuid.UUID    `json:"clubOwner"`
	Members        []uuid.UUID  `json:"members"`
	PendingMembers []uuid.UUID  `json:"pendingMembers"`
	CreatedAt      time.Time    `json:"dateCreated"`
}
