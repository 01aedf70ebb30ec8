package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/auth"
	"github.com/bananahell/kanban-challenge/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type AuthService struct {
	users userStore
}

func NewAuthService(users userStore) *AuthService {
	return &AuthService{users: users}
}

// SignUp registers a user and returns an access token. A duplicate email
// surfaces as the credentials-taken reason, whether caught by the pre-check
// or by the unique constraint.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperr.ErrCredentialsTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperr.ErrCredentialsTaken
		}
		return "", err
	}

	return auth.GenerateToken(user.ID)
}

// SignIn verifies credentials and returns an access token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrEmailNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", apperr.ErrIncorrectPassword
	}

	return auth.GenerateToken(user.ID)
}
