package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return user, nil
}

// Update edits the session user's own profile.
func (s *UserService) Update(ctx context.Context, userID uint, name, email *string) (*model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		newEmail := strings.ToLower(*email)
		if newEmail != user.Email {
			existing, err := s.users.FindByEmail(ctx, newEmail)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperr.ErrCredentialsTaken
			}
		}
		user.Email = newEmail
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrCredentialsTaken
		}
		return nil, err
	}
	return user, nil
}
