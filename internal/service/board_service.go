package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
)

type boardStore interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uint) (*model.Board, error)
	GetForUser(ctx context.Context, userID uint) ([]model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	UpdateOwner(ctx context.Context, boardID, newOwnerID uint) error
	Delete(ctx context.Context, id uint) error
}

type memberStore interface {
	Create(ctx context.Context, member *model.BoardMember) error
	Upsert(ctx context.Context, boardID, userID uint, role string) error
	Delete(ctx context.Context, boardID, userID uint) error
}

type boardCardStore interface {
	RemoveUserFromBoardCards(ctx context.Context, boardID, userID uint) error
}

type BoardService struct {
	authz   *Authorizer
	boards  boardStore
	members memberStore
	cards   boardCardStore
	users   userStore
}

func NewBoardService(authz *Authorizer, boards boardStore, members memberStore, cards boardCardStore, users userStore) *BoardService {
	return &BoardService{
		authz:   authz,
		boards:  boards,
		members: members,
		cards:   cards,
		users:   users,
	}
}

// GetForUser lists every board the user works in.
func (s *BoardService) GetForUser(ctx context.Context, userID uint) ([]model.Board, error) {
	return s.boards.GetForUser(ctx, userID)
}

func (s *BoardService) GetByID(ctx context.Context, userID, boardID uint) (*model.Board, error) {
	return s.authz.RequireBoardRole(ctx, userID, boardID, RoleVisitor)
}

// Create makes the requesting user the board owner and also inserts an admin
// membership row, so owner satisfies member/admin-gated checks uniformly.
func (s *BoardService) Create(ctx context.Context, userID uint, title, background string) (*model.Board, error) {
	board := &model.Board{
		Title:      title,
		Background: background,
		OwnerID:    userID,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}

	member := &model.BoardMember{
		BoardID: board.ID,
		UserID:  userID,
		Role:    model.RoleAdmin,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) Update(ctx context.Context, userID, boardID uint, title, background *string) (*model.Board, error) {
	board, err := s.authz.RequireBoardRole(ctx, userID, boardID, RoleAdmin)
	if err != nil {
		return nil, err
	}

	if title != nil {
		board.Title = *title
	}
	if background != nil {
		board.Background = *background
	}

	if err := s.boards.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) Delete(ctx context.Context, userID, boardID uint) error {
	if _, err := s.authz.RequireBoardRole(ctx, userID, boardID, RoleAdmin); err != nil {
		return err
	}
	return s.boards.Delete(ctx, boardID)
}

// AddUser grants the target user a role on the board. The target must exist
// and must not already be a board user in any capacity.
func (s *BoardService) AddUser(ctx context.Context, actorID, boardID, targetID uint, role string) (*model.BoardMember, error) {
	if _, err := s.authz.RequireBoardRole(ctx, actorID, boardID, RoleAdmin); err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if err := s.authz.RequireNotBoardUser(ctx, boardID, targetID); err != nil {
		return nil, err
	}

	member := &model.BoardMember{
		BoardID: boardID,
		UserID:  targetID,
		Role:    role,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveUser strips the target's membership and removes them from the
// assignee set of every card in the board. Self-removal is rejected so the
// owner cannot evict themselves.
func (s *BoardService) RemoveUser(ctx context.Context, actorID, boardID, targetID uint) error {
	if actorID == targetID {
		return apperr.ErrCantRemoveOwner
	}
	if _, err := s.authz.RequireBoardRole(ctx, actorID, boardID, RoleAdmin); err != nil {
		return err
	}

	if err := s.members.Delete(ctx, boardID, targetID); err != nil {
		return err
	}
	return s.cards.RemoveUserFromBoardCards(ctx, boardID, targetID)
}

// PassOwner transfers board ownership. The new owner gets an admin row so the
// demoted former owner's grant path stays intact, then ownerId is updated.
func (s *BoardService) PassOwner(ctx context.Context, actorID, boardID, targetID uint) (*model.Board, error) {
	board, err := s.authz.RequireBoardRole(ctx, actorID, boardID, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if board.OwnerID == targetID {
		return nil, apperr.ErrCantPassToOwner
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.ErrResourceNotFound
	}

	if err := s.members.Upsert(ctx, boardID, targetID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.boards.UpdateOwner(ctx, boardID, targetID); err != nil {
		return nil, err
	}

	board.OwnerID = targetID
	return board, nil
}
