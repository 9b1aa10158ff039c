package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register a new user with username + display name + device public key.
	Register(ctx context.Context, cmd RegisterCommand) (*UserWithToken, error)

	// Update display name only (username is immutable)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
	GetUserProfileByUsername(ctx context.Context, username string) (*UserProfileDTO, error)

	// PublishKey replaces the user's published public key; GetPublicKey is
	// the directory lookup every sender performs before encrypting.
	PublishKey(ctx context.Context, userID uuid.UUID, publicKey []byte) error
	GetPublicKey(ctx context.Context, userID uuid.UUID) (*PublicKeyDTO, error)

	SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastSeen time.Time) error
}
