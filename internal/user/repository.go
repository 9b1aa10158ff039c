package user

import (
	"context"
	"time"

	User "github.com/fprevidi/Blabbo/internal/user/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)
	UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpsertDeviceKey replaces any previously published key for the user.
	UpsertDeviceKey(ctx context.Context, key *User.DeviceKey) error
	GetDeviceKey(ctx context.Context, userID uuid.UUID) (*User.DeviceKey, error)

	SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastSeen time.Time) error
}
