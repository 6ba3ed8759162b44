package services

import (
	"testing"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db))
}

func TestSignup_Success(t *testing.T) {
	service := setupAuthService(t)

	user, err := service.Signup(SignupInput{Username: "alice", Password: "supersecret"})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.Empty(t, user.Tasks)
	assert.Empty(t, user.Projects)
	assert.Empty(t, user.ManagedProjects)
}

func TestSignup_UsernameTaken(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Signup(SignupInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = service.Signup(SignupInput{Username: "alice", Password: "anothersecret"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignup_PasswordTooShort(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Signup(SignupInput{Username: "alice", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestLogin_Success(t *testing.T) {
	service := setupAuthService(t)

	created, err := service.Signup(SignupInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	user, err := service.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Signup(SignupInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = service.Login(LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Login(LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
