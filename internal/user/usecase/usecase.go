package usecase

import (
	"context"
	"encoding/base64"
	"regexp"
	"time"

	"github.com/fprevidi/Blabbo/config"
	"github.com/fprevidi/Blabbo/internal/crypto"
	"github.com/fprevidi/Blabbo/internal/user"
	User "github.com/fprevidi/Blabbo/internal/user/model"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"
	"github.com/fprevidi/Blabbo/pkg/utils"

	"github.com/google/uuid"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

type UserUsecase struct {
	repo   user.UserRepository
	cfg    *config.Config
	logger logger.Logger
}

func NewUserUsecase(repo user.UserRepository, cfg *config.Config, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, cfg: cfg, logger: logger}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserWithToken, error) {
	if !usernameRe.MatchString(cmd.Username) {
		return nil, errors.ErrInvalidUsername
	}
	if len(cmd.PublicKey) != crypto.KeySize {
		return nil, errors.InvalidArg("public key must be 32 bytes")
	}

	taken, err := uc.repo.UsernameExists(ctx, cmd.Username)
	if err != nil {
		uc.logger.Error("failed to check username", "username", cmd.Username, "err", err)
		return nil, errors.Internal("failed to register user")
	}
	if taken {
		return nil, errors.ErrUsernameTaken
	}

	displayName := cmd.DisplayName
	if displayName == "" {
		displayName = cmd.Username
	}

	created := &User.User{
		Username: cmd.Username,
		Name:     displayName,
	}
	// CreateUser maps the unique violation, so two racing registrations for
	// the same username still come back as ErrUsernameTaken.
	if err := uc.repo.CreateUser(ctx, created); err != nil {
		if errors.Is(err, errors.ErrUsernameTaken) {
			return nil, err
		}
		uc.logger.Error("failed to create user", "username", cmd.Username, "err", err)
		return nil, errors.Internal("failed to register user")
	}

	if err := uc.repo.UpsertDeviceKey(ctx, &User.DeviceKey{
		UserID:      created.ID,
		PublicKey:   cmd.PublicKey,
		PublishedAt: time.Now(),
	}); err != nil {
		uc.logger.Error("failed to publish device key", "user_id", created.ID, "err", err)
		return nil, errors.Internal("failed to register user")
	}

	token, err := utils.GenerateJWTToken(created, uc.cfg)
	if err != nil {
		uc.logger.Error("failed to sign token", "user_id", created.ID, "err", err)
		return nil, errors.Internal("failed to register user")
	}

	return &user.UserWithToken{
		User: &user.UserDTO{
			ID:          created.ID,
			Username:    created.Username,
			DisplayName: created.Name,
		},
		Token: token,
	}, nil
}

func (uc *UserUsecase) UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	if newName == "" {
		return errors.InvalidArg("display name is required")
	}
	if err := uc.repo.UpdateUserDisplayName(ctx, userID, newName); err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return err
		}
		uc.logger.Error("failed to update display name", "user_id", userID, "err", err)
		return errors.Internal("failed to update display name")
	}
	return nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, err
		}
		uc.logger.Error("failed to load user", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load user")
	}
	return toProfileDTO(u), nil
}

func (uc *UserUsecase) GetUserProfileByUsername(ctx context.Context, username string) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, err
		}
		uc.logger.Error("failed to load user", "username", username, "err", err)
		return nil, errors.Internal("failed to load user")
	}
	return toProfileDTO(u), nil
}

// PublishKey replaces the user's directory entry. Messages sealed against the
// previous key stay undecryptable on the new install; that is accepted, the
// directory only ever serves the current key.
func (uc *UserUsecase) PublishKey(ctx context.Context, userID uuid.UUID, publicKey []byte) error {
	if len(publicKey) != crypto.KeySize {
		return errors.InvalidArg("public key must be 32 bytes")
	}
	if _, err := uc.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := uc.repo.UpsertDeviceKey(ctx, &User.DeviceKey{
		UserID:      userID,
		PublicKey:   publicKey,
		PublishedAt: time.Now(),
	}); err != nil {
		uc.logger.Error("failed to publish key", "user_id", userID, "err", err)
		return errors.Internal("failed to publish key")
	}
	return nil
}

func (uc *UserUsecase) GetPublicKey(ctx context.Context, userID uuid.UUID) (*user.PublicKeyDTO, error) {
	key, err := uc.repo.GetDeviceKey(ctx, userID)
	if err != nil {
		if errors.Is(err, errors.ErrKeyNotFound) {
			return nil, err
		}
		uc.logger.Error("failed to load device key", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load device key")
	}
	return &user.PublicKeyDTO{
		PublicKey: base64.StdEncoding.EncodeToString(key.PublicKey),
	}, nil
}

func (uc *UserUsecase) SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastSeen time.Time) error {
	if err := uc.repo.SetPresence(ctx, userID, online, lastSeen); err != nil {
		uc.logger.Warn("failed to update presence", "user_id", userID, "err", err)
		return errors.Internal("failed to update presence")
	}
	return nil
}

func toProfileDTO(u *User.User) *user.UserProfileDTO {
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Avatar:      u.Avatar,
		IsOnline:    u.IsOnline,
		LastSeen:    u.LastSeen,
	}
}
