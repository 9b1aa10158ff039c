package usecase

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/fprevidi/Blabbo/config"
	"github.com/fprevidi/Blabbo/internal/user"
	"github.com/fprevidi/Blabbo/internal/user/mocks"
	User "github.com/fprevidi/Blabbo/internal/user/model"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{Secret: "test-secret", ExpiredIn: 60},
	}
}

func newUsecase(t *testing.T) (*UserUsecase, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewUserUsecase(repo, testConfig(), logger.Logger{}), repo
}

func validKey() []byte {
	return make([]byte, 32)
}

func Test_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path returns user and token", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *User.User) error {
				u.ID = uuid.New()
				return nil
			})
		repo.EXPECT().UpsertDeviceKey(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.Register(ctx, user.RegisterCommand{
			Username:    "alice",
			DisplayName: "Alice",
			PublicKey:   validKey(),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", out.User.Username)
		assert.Equal(t, "Alice", out.User.DisplayName)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("display name defaults to username", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().UsernameExists(gomock.Any(), "bob").Return(false, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *User.User) error {
				assert.Equal(t, "bob", u.Name)
				u.ID = uuid.New()
				return nil
			})
		repo.EXPECT().UpsertDeviceKey(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "bob", PublicKey: validKey()})
		require.NoError(t, err)
	})

	t.Run("rejects invalid usernames without touching the repo", func(t *testing.T) {
		uc, _ := newUsecase(t)

		for _, bad := range []string{"", "ab", "Alice", "has space", "way_too_long_aaaaaaaaaaaaaaaaaaaaaaaaaaaa"} {
			_, err := uc.Register(ctx, user.RegisterCommand{Username: bad, PublicKey: validKey()})
			assert.ErrorIs(t, err, errors.ErrInvalidUsername, "username %q", bad)
		}
	})

	t.Run("rejects short public key", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", PublicKey: make([]byte, 31)})
		assert.Error(t, err)
	})

	t.Run("taken username", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().UsernameExists(gomock.Any(), "alice").Return(true, nil)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", PublicKey: validKey()})
		assert.ErrorIs(t, err, errors.ErrUsernameTaken)
	})

	t.Run("lost registration race surfaces as taken", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(errors.ErrUsernameTaken)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", PublicKey: validKey()})
		assert.ErrorIs(t, err, errors.ErrUsernameTaken)
	})
}

func Test_PublishKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("happy path replaces the published key", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&User.User{ID: userID}, nil)
		repo.EXPECT().UpsertDeviceKey(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key *User.DeviceKey) error {
				assert.Equal(t, userID, key.UserID)
				assert.Len(t, key.PublicKey, 32)
				return nil
			})

		require.NoError(t, uc.PublishKey(ctx, userID, validKey()))
	})

	t.Run("wrong key length", func(t *testing.T) {
		uc, _ := newUsecase(t)
		assert.Error(t, uc.PublishKey(ctx, userID, make([]byte, 16)))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, repo := newUsecase(t)
		repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, errors.ErrUserNotFound)
		assert.ErrorIs(t, uc.PublishKey(ctx, userID, validKey()), errors.ErrUserNotFound)
	})
}

func Test_GetPublicKey(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns base64 of the stored key", func(t *testing.T) {
		uc, repo := newUsecase(t)

		raw := validKey()
		raw[0] = 0xAB
		repo.EXPECT().GetDeviceKey(gomock.Any(), userID).Return(&User.DeviceKey{
			UserID: userID, PublicKey: raw, PublishedAt: time.Now(),
		}, nil)

		dto, err := uc.GetPublicKey(ctx, userID)
		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(dto.PublicKey)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	})

	t.Run("no published key", func(t *testing.T) {
		uc, repo := newUsecase(t)
		repo.EXPECT().GetDeviceKey(gomock.Any(), userID).Return(nil, errors.ErrKeyNotFound)
		_, err := uc.GetPublicKey(ctx, userID)
		assert.ErrorIs(t, err, errors.ErrKeyNotFound)
	})
}
