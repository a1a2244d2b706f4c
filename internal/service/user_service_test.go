package service_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/internal/repository/mocks"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	newID := uuid.New()

	testCases := []struct {
		Desc         string
		Req          service.RegisterRequest
		MockPrepFunc func()
		ExpectedErr  error
		ExpectError  bool
	}{
		{
			Desc: "registered",
			Req:  service.RegisterRequest{Name: "sam_k", Password: "longenough"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)
			},
		},
		{
			Desc:         "name starting with digit",
			Req:          service.RegisterRequest{Name: "1sam", Password: "longenough"},
			MockPrepFunc: func() {},
			ExpectedErr:  errorvalues.ErrValidation,
		},
		{
			Desc:         "short password",
			Req:          service.RegisterRequest{Name: "sam", Password: "short"},
			MockPrepFunc: func() {},
			ExpectedErr:  errorvalues.ErrValidation,
		},
		{
			Desc: "name taken",
			Req:  service.RegisterRequest{Name: "sam", Password: "longenough"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserExists)
			},
			ExpectedErr: errorvalues.ErrUserExists,
		},
		{
			Desc: "repository failure",
			Req:  service.RegisterRequest{Name: "sam", Password: "longenough"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))
			},
			ExpectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Register(ctx, &tc.Req)
			switch {
			case tc.ExpectedErr != nil:
				assert.ErrorIs(t, err, tc.ExpectedErr)
			case tc.ExpectError:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, newID, user.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tc.Req.Password)))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("longenough")
	require.NoError(t, err)
	stored := &entity.User{ID: uuid.New(), Name: "sam", PasswordHash: hash}

	testCases := []struct {
		Desc         string
		Password     string
		MockPrepFunc func()
		ExpectedErr  error
	}{
		{
			Desc:     "right password",
			Password: "longenough",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "sam").Return(stored, nil)
			},
		},
		{
			Desc:     "wrong password",
			Password: "wrongpassword",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "sam").Return(stored, nil)
			},
			ExpectedErr: errorvalues.ErrWrongCredentials,
		},
		{
			Desc:     "unknown user",
			Password: "longenough",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "sam").Return(nil, errorvalues.ErrUserNotFound)
			},
			ExpectedErr: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Login(ctx, "sam", tc.Password)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("longenough")
	require.NoError(t, err)
	stored := &entity.User{ID: uuid.New(), Name: "sam", PasswordHash: hash}

	t.Run("wrong password keeps account", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
		assert.ErrorIs(t, us.DeleteAccount(ctx, stored.ID, "nope"), errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), stored.ID).Return(nil)
		assert.NoError(t, us.DeleteAccount(ctx, stored.ID, "longenough"))
	})
	t.Run("already gone", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(nil, errorvalues.ErrUserNotFound)
		assert.ErrorIs(t, us.DeleteAccount(ctx, stored.ID, "longenough"), errorvalues.ErrUserNotFound)
	})
}

func TestUserServiceIntegrational(t *testing.T) {
	if os.Getenv("FAST800_INTEGRATION") != "1" {
		t.Skip("set FAST800_INTEGRATION=1 to run against a postgres container")
	}
	pool := setupUsersTestDB(t)
	us := service.NewUserService(repository.NewUsersRepo(pool))
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("deleted", func(t *testing.T) {
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, password))
		_, err := us.GetByName(ctx, username)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func setupUsersTestDB(t *testing.T) *pgxpool.Pool {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fast800"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}
