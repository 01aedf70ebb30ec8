package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type commentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uint) (*model.Comment, error)
	GetByCardID(ctx context.Context, cardID uint) ([]model.Comment, error)
	GetByUserID(ctx context.Context, userID uint) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
}

type CommentService struct {
	authz    *Authorizer
	comments commentStore
}

func NewCommentService(authz *Authorizer, comments commentStore) *CommentService {
	return &CommentService{authz: authz, comments: comments}
}

// GetByUser lists the session user's own comments; no board check needed.
func (s *CommentService) GetByUser(ctx context.Context, userID uint) ([]model.Comment, error) {
	return s.comments.GetByUserID(ctx, userID)
}

func (s *CommentService) GetByID(ctx context.Context, userID, commentID uint) (*model.Comment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceComment, commentID, RoleVisitor); err != nil {
		return nil, err
	}
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return comment, nil
}

func (s *CommentService) GetByCard(ctx context.Context, userID, cardID uint) ([]model.Comment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.comments.GetByCardID(ctx, cardID)
}

// Create posts a comment under the session user's name. Visitors may
// comment.
func (s *CommentService) Create(ctx context.Context, userID uint, message string, cardID uint) (*model.Comment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleVisitor); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Message: message,
		CardID:  cardID,
		UserID:  userID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update is author-only; board role is irrelevant here.
func (s *CommentService) Update(ctx context.Context, userID, commentID uint, message *string) (*model.Comment, error) {
	comment, err := s.authz.RequireCommentAuthor(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	if message != nil {
		comment.Message = *message
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete is author-only; board role is irrelevant here.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	if _, err := s.authz.RequireCommentAuthor(ctx, userID, commentID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}
