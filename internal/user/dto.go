package user

import (
	"time"

	"github.com/google/uuid"

	User "github.com/robertwachen/fritterfrontend/internal/user/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type UpdateDisplayNameCommand struct {
	DisplayName string `json:"displayName"`
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	DateJoined  time.Time `json:"dateJoined"`
}

func ToDTO(u *User.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		DateJoined:  u.CreatedAt,
	}
}
