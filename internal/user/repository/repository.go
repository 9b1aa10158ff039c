package repository

import (
	"context"
	"database/sql"
	"time"

	User "github.com/fprevidi/Blabbo/internal/user/model"
	appErrors "github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.Exec: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	res, err := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("name = ?", newName).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUserDisplayName.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUserDisplayName.RowsAffected: ")
	}
	if n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*User.User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) UpsertDeviceKey(ctx context.Context, key *User.DeviceKey) error {
	_, err := r.db.NewInsert().
		Model(key).
		On("CONFLICT (user_id) DO UPDATE").
		Set("public_key = EXCLUDED.public_key").
		Set("published_at = EXCLUDED.published_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpsertDeviceKey.Exec: ")
	}
	return nil
}

func (r *UserRepository) GetDeviceKey(ctx context.Context, userID uuid.UUID) (*User.DeviceKey, error) {
	key := new(User.DeviceKey)
	err := r.db.NewSelect().Model(key).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetDeviceKey.Scan: ")
	}
	return key, nil
}

func (r *UserRepository) SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastSeen time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("is_online = ?", online).
		Set("last_seen = ?", lastSeen).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetPresence.Exec: ")
	}
	return nil
}
