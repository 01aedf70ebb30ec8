package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type attachmentStore interface {
	Create(ctx context.Context, attachment *model.Attachment) error
	GetByID(ctx context.Context, id uint) (*model.Attachment, error)
	GetByCardID(ctx context.Context, cardID uint) ([]model.Attachment, error)
	Update(ctx context.Context, attachment *model.Attachment) error
	Delete(ctx context.Context, id uint) error
}

type AttachmentService struct {
	authz       *Authorizer
	attachments attachmentStore
}

func NewAttachmentService(authz *Authorizer, attachments attachmentStore) *AttachmentService {
	return &AttachmentService{authz: authz, attachments: attachments}
}

func (s *AttachmentService) GetByID(ctx context.Context, userID, attachmentID uint) (*model.Attachment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceAttachment, attachmentID, RoleVisitor); err != nil {
		return nil, err
	}
	attachment, err := s.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return attachment, nil
}

func (s *AttachmentService) GetByCard(ctx context.Context, userID, cardID uint) ([]model.Attachment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.attachments.GetByCardID(ctx, cardID)
}

func (s *AttachmentService) Create(ctx context.Context, userID uint, content string, cardID uint) (*model.Attachment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		Content: content,
		CardID:  cardID,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

func (s *AttachmentService) Update(ctx context.Context, userID, attachmentID uint, content *string) (*model.Attachment, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceAttachment, attachmentID, RoleMember); err != nil {
		return nil, err
	}

	attachment, err := s.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if content != nil {
		attachment.Content = *content
	}

	if err := s.attachments.Update(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

func (s *AttachmentService) Delete(ctx context.Context, userID, attachmentID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceAttachment, attachmentID, RoleMember); err != nil {
		return err
	}
	return s.attachments.Delete(ctx, attachmentID)
}
