package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username    string
	DisplayName string
	PublicKey   []byte // Curve25519, 32 bytes, published at registration
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"name"`
}

type UserProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"name"`
	Avatar      string    `json:"avatar,omitempty"`
	IsOnline    bool      `json:"isOnline"`
	LastSeen    time.Time `json:"lastSeen,omitempty"`
}

type PublicKeyDTO struct {
	PublicKey string `json:"publicKey"` // base64
}

type UserWithToken struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
