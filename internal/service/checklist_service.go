package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type checklistStore interface {
	Create(ctx context.Context, checklist *model.Checklist) error
	GetByID(ctx context.Context, id uint) (*model.Checklist, error)
	GetByCardID(ctx context.Context, cardID uint) ([]model.Checklist, error)
	Update(ctx context.Context, checklist *model.Checklist) error
	Delete(ctx context.Context, id uint) error
}

type ChecklistService struct {
	authz      *Authorizer
	checklists checklistStore
}

func NewChecklistService(authz *Authorizer, checklists checklistStore) *ChecklistService {
	return &ChecklistService{authz: authz, checklists: checklists}
}

func (s *ChecklistService) GetByID(ctx context.Context, userID, checklistID uint) (*model.Checklist, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklist, checklistID, RoleVisitor); err != nil {
		return nil, err
	}
	checklist, err := s.checklists.GetByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return checklist, nil
}

func (s *ChecklistService) GetByCard(ctx context.Context, userID, cardID uint) ([]model.Checklist, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.checklists.GetByCardID(ctx, cardID)
}

func (s *ChecklistService) Create(ctx context.Context, userID uint, title string, cardID uint) (*model.Checklist, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return nil, err
	}

	checklist := &model.Checklist{
		Title:  title,
		CardID: cardID,
	}
	if err := s.checklists.Create(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *ChecklistService) Update(ctx context.Context, userID, checklistID uint, title *string) (*model.Checklist, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklist, checklistID, RoleMember); err != nil {
		return nil, err
	}

	checklist, err := s.checklists.GetByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if title != nil {
		checklist.Title = *title
	}

	if err := s.checklists.Update(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *ChecklistService) Delete(ctx context.Context, userID, checklistID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklist, checklistID, RoleMember); err != nil {
		return err
	}
	return s.checklists.Delete(ctx, checklistID)
}
