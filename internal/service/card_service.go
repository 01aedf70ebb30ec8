package service

import (
	"context"
	"time"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type cardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uint) (*model.Card, error)
	GetByStatusListID(ctx context.Context, statusListID uint) ([]model.Card, error)
	GetByBoardID(ctx context.Context, boardID uint) ([]model.Card, error)
	GetByAssignee(ctx context.Context, userID uint) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Move(ctx context.Context, cardID, statusListID uint) error
	Delete(ctx context.Context, id uint) error
	AddUser(ctx context.Context, cardID, userID uint) error
	RemoveUser(ctx context.Context, cardID, userID uint) error
}

type listGetter interface {
	GetByID(ctx context.Context, id uint) (*model.StatusList, error)
}

type CreateCardInput struct {
	Title        string
	Description  string
	BeginDate    *time.Time
	EndDate      *time.Time
	StatusListID uint
	TagID        *uint
}

type UpdateCardInput struct {
	Title        *string
	Description  *string
	BeginDate    *time.Time
	EndDate      *time.Time
	StatusListID *uint
	TagID        *uint
}

type CardService struct {
	authz *Authorizer
	cards cardStore
	lists listGetter
	users userStore
}

func NewCardService(authz *Authorizer, cards cardStore, lists listGetter, users userStore) *CardService {
	return &CardService{
		authz: authz,
		cards: cards,
		lists: lists,
		users: users,
	}
}

// GetByUser lists the cards the session user is assigned to, across boards.
func (s *CardService) GetByUser(ctx context.Context, userID uint) ([]model.Card, error) {
	return s.cards.GetByAssignee(ctx, userID)
}

func (s *CardService) GetByID(ctx context.Context, userID, cardID uint) (*model.Card, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleVisitor); err != nil {
		return nil, err
	}
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return card, nil
}

func (s *CardService) GetByBoard(ctx context.Context, userID, boardID uint) ([]model.Card, error) {
	if _, err := s.authz.RequireBoardRole(ctx, userID, boardID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.cards.GetByBoardID(ctx, boardID)
}

func (s *CardService) GetByStatusList(ctx context.Context, userID, listID uint) ([]model.Card, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceStatusList, listID, RoleVisitor); err != nil {
		return nil, err
	}
	return s.cards.GetByStatusListID(ctx, listID)
}

func (s *CardService) Create(ctx context.Context, userID uint, in CreateCardInput) (*model.Card, error) {
	list, err := s.lists.GetByID(ctx, in.StatusListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperr.ErrResourceNotFound
	}
	if _, err := s.authz.RequireBoardRole(ctx, userID, list.BoardID, RoleMember); err != nil {
		return nil, err
	}

	card := &model.Card{
		Title:        in.Title,
		Description:  in.Description,
		BeginDate:    in.BeginDate,
		EndDate:      in.EndDate,
		StatusListID: in.StatusListID,
		TagID:        in.TagID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Update edits card fields. Changing the status list re-validates membership
// against the destination list's board.
func (s *CardService) Update(ctx context.Context, userID, cardID uint, in UpdateCardInput) (*model.Card, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if in.StatusListID != nil && *in.StatusListID != card.StatusListID {
		list, err := s.lists.GetByID(ctx, *in.StatusListID)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, apperr.ErrResourceNotFound
		}
		if _, err := s.authz.RequireBoardRole(ctx, userID, list.BoardID, RoleMember); err != nil {
			return nil, err
		}
		card.StatusListID = *in.StatusListID
	}

	if in.Title != nil {
		card.Title = *in.Title
	}
	if in.Description != nil {
		card.Description = *in.Description
	}
	if in.BeginDate != nil {
		card.BeginDate = in.BeginDate
	}
	if in.EndDate != nil {
		card.EndDate = in.EndDate
	}
	if in.TagID != nil {
		card.TagID = in.TagID
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Move changes only the card's status list, checking membership on both the
// current board and the destination list's board.
func (s *CardService) Move(ctx context.Context, userID, cardID, statusListID uint) (*model.Card, error) {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return nil, err
	}

	list, err := s.lists.GetByID(ctx, statusListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperr.ErrResourceNotFound
	}
	if _, err := s.authz.RequireBoardRole(ctx, userID, list.BoardID, RoleMember); err != nil {
		return nil, err
	}

	if err := s.cards.Move(ctx, cardID, statusListID); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, cardID)
}

func (s *CardService) Delete(ctx context.Context, userID, cardID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, userID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return err
	}
	return s.cards.Delete(ctx, cardID)
}

func (s *CardService) AddUser(ctx context.Context, actorID, cardID, targetID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, actorID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.ErrResourceNotFound
	}

	return s.cards.AddUser(ctx, cardID, targetID)
}

func (s *CardService) RemoveUser(ctx context.Context, actorID, cardID, targetID uint) error {
	if _, err := s.authz.RequireChainRole(ctx, actorID, repository.ResourceCard, cardID, RoleMember); err != nil {
		return err
	}
	return s.cards.RemoveUser(ctx, cardID, targetID)
}
