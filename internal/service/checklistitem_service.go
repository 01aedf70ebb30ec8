package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type checklistItemStore interface {
	Create(ctx context.Context, item *model.ChecklistItem) error
	GetByID(ctx context.Context, id uint) (*model.ChecklistItem, error)
	GetByChecklistID(ctx context.Context, checklistID uint) ([]model.ChecklistItem, error)
	Update(ctx context.Context, item *model.ChecklistItem) error
	Delete(ctx context.Context, id uint) error
}

type ChecklistItemService struct {
	authz *Authorizer
	items checklistItemStore
}

func NewChecklistItemService(authz *Authorizer, items checklistItemStore) *ChecklistItemService {
	return &ChecklistItemService{authz: authz, items: items}
}

func (s *ChecklistItemService) GetByID(ctx context.Context, userID, itemID uint) (*model.ChecklistItem, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklistItem, itemID, RoleVisitor); err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return item, nil
}

func (s *ChecklistItemService) GetByChecklist(ctx context.Context, userID, checklistID uint) ([]model.ChecklistItem, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklist, checklistID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.items.GetByChecklistID(ctx, checklistID)
}

func (s *ChecklistItemService) Create(ctx context.Context, userID uint, description string, checklistID uint) (*model.ChecklistItem, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklist, checklistID, RoleMember); err != nil {
		return nil, err
	}

	item := &model.ChecklistItem{
		Description: description,
		ChecklistID: checklistID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ChecklistItemService) Update(ctx context.Context, userID, itemID uint, description *string, isDone *bool) (*model.ChecklistItem, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklistItem, itemID, RoleMember); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if description != nil {
		item.Description = *description
	}
	if isDone != nil {
		item.IsDone = *isDone
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ChecklistItemService) Delete(ctx context.Context, userID, itemID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceChecklistItem, itemID, RoleMember); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}
