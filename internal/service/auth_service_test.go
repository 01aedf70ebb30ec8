package service_test

import (
	"context"
	"os"
	"testing"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService() (*service.AuthService, *MockUserRepository) {
	// Устанавливаем JWT_SECRET для генерации токенов
	os.Setenv("JWT_SECRET", "test-secret")
	users := new(MockUserRepository)
	return service.NewAuthService(users), users
}

func TestSignUp_Success(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 1
		}).Return(nil)

	// Act
	token, err := svc.SignUp(context.Background(), "Test User", "test@example.com", "password123")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	users.AssertExpectations(t)
}

func TestSignUp_LowercasesEmail(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	// Email нормализуется перед поиском и сохранением
	users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "test@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 1
	}).Return(nil)

	// Act
	_, err := svc.SignUp(context.Background(), "Test User", "Test@Example.COM", "password123")

	// Assert
	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestSignUp_CredentialsTaken(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	// Пользователь с таким email уже существует
	existing := &model.User{ID: 1, Email: "existing@example.com"}
	users.On("FindByEmail", mock.Anything, "existing@example.com").Return(existing, nil)

	// Act
	_, err := svc.SignUp(context.Background(), "Test User", "existing@example.com", "password123")

	// Assert
	assert.ErrorIs(t, err, apperr.ErrCredentialsTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignIn_Success(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &model.User{ID: 1, Email: "test@example.com", HashedPassword: string(hashedPassword)}
	users.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)

	// Act
	token, err := svc.SignIn(context.Background(), "test@example.com", "password123")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignIn_EmailNotFound(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	users.On("FindByEmail", mock.Anything, "nonexistent@example.com").Return(nil, nil)

	// Act
	_, err := svc.SignIn(context.Background(), "nonexistent@example.com", "password123")

	// Assert
	assert.ErrorIs(t, err, apperr.ErrEmailNotFound)
}

func TestSignIn_IncorrectPassword(t *testing.T) {
	// Arrange
	svc, users := setupAuthService()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)
	user := &model.User{ID: 1, Email: "test@example.com", HashedPassword: string(hashedPassword)}
	users.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)

	// Act
	_, err := svc.SignIn(context.Background(), "test@example.com", "wrong_password")

	// Assert
	assert.ErrorIs(t, err, apperr.ErrIncorrectPassword)
}
