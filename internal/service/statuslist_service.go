package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type statusListStore interface {
	Create(ctx context.Context, list *model.StatusList) error
	GetByID(ctx context.Context, id uint) (*model.StatusList, error)
	GetByBoardID(ctx context.Context, boardID uint) ([]model.StatusList, error)
	Update(ctx context.Context, list *model.StatusList) error
	Delete(ctx context.Context, id uint) error
	PositionTaken(ctx context.Context, boardID uint, position int, excludeID uint) (bool, error)
}

type StatusListService struct {
	authz *Authorizer
	lists statusListStore
}

func NewStatusListService(authz *Authorizer, lists statusListStore) *StatusListService {
	return &StatusListService{authz: authz, lists: lists}
}

func (s *StatusListService) GetByID(ctx context.Context, userID, listID uint) (*model.StatusList, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceStatusList, listID, RoleVisitor); err != nil {
		return nil, err
	}
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return list, nil
}

func (s *StatusListService) GetByBoard(ctx context.Context, userID, boardID uint) ([]model.StatusList, error) {
	if _, err := s.authz.RequireBoardRole(ctx, userID, boardID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.lists.GetByBoardID(ctx, boardID)
}

// Create rejects a position already occupied by a sibling list, regardless
// of the requester's role.
func (s *StatusListService) Create(ctx context.Context, userID uint, name string, position int, boardID uint) (*model.StatusList, error) {
	if _, err := s.authz.RequireBoardRole(ctx, userID, boardID, RoleMember); err != nil {
		return nil, err
	}

	taken, err := s.lists.PositionTaken(ctx, boardID, position, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrPositionTaken
	}

	list := &model.StatusList{
		Name:     name,
		Position: position,
		BoardID:  boardID,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update re-checks position uniqueness whenever the position changes,
// excluding the list being edited.
func (s *StatusListService) Update(ctx context.Context, userID, listID uint, name *string, position *int) (*model.StatusList, error) {
	boardID, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceStatusList, listID, RoleMember)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if position != nil && *position != list.Position {
		taken, err := s.lists.PositionTaken(ctx, boardID, *position, listID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.ErrPositionTaken
		}
		list.Position = *position
	}
	if name != nil {
		list.Name = *name
	}

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *StatusListService) Delete(ctx context.Context, userID, listID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceStatusList, listID, RoleMember); err != nil {
		return err
	}
	return s.lists.Delete(ctx, listID)
}
