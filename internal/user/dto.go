package user

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserDTO struct {
	Name string `json:"name" validate:"required,max=50"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
