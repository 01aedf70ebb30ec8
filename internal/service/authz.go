package service

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uint) (*model.Board, error)
}

type roleGetter interface {
	GetRole(ctx context.Context, boardID, userID uint) (string, error)
}

type chainResolver interface {
	AncestorBoardID(ctx context.Context, res repository.Resource, id uint) (uint, error)
}

type commentGetter interface {
	GetByID(ctx context.Context, id uint) (*model.Comment, error)
}

// Authorizer resolves a user's role on a board, walking a resource's
// ownership chain up to its board when needed. All checks are read-only;
// services mutate only after a check passes.
type Authorizer struct {
	boards   boardGetter
	members  roleGetter
	chain    chainResolver
	comments commentGetter
}

func NewAuthorizer(boards boardGetter, members roleGetter, chain chainResolver, comments commentGetter) *Authorizer {
	return &Authorizer{
		boards:   boards,
		members:  members,
		chain:    chain,
		comments: comments,
	}
}

// BoardRole returns the highest role the user holds on the board. Owner wins
// over any board_members row.
func (a *Authorizer) BoardRole(ctx context.Context, userID, boardID uint) (Role, *model.Board, error) {
	board, err := a.boards.GetByID(ctx, boardID)
	if err != nil {
		return RoleNone, nil, err
	}
	if board == nil {
		return RoleNone, nil, apperr.ErrResourceNotFound
	}
	if board.OwnerID == userID {
		return RoleOwner, board, nil
	}

	role, err := a.members.GetRole(ctx, boardID, userID)
	if err != nil {
		return RoleNone, nil, err
	}
	return roleFromString(role), board, nil
}

// RequireBoardRole fails with a role-specific Forbidden reason when the user
// holds less than min on the board.
func (a *Authorizer) RequireBoardRole(ctx context.Context, userID, boardID uint, min Role) (*model.Board, error) {
	role, board, err := a.BoardRole(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}
	if role < min {
		return nil, forbiddenFor(min)
	}
	return board, nil
}

// RequireChainRole resolves the resource's ancestor board and checks the
// user's role on it. Returns the ancestor board id on success.
func (a *Authorizer) RequireChainRole(ctx context.Context, userID uint, res repository.Resource, id uint, min Role) (uint, error) {
	boardID, err := a.chain.AncestorBoardID(ctx, res, id)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, apperr.ErrResourceNotFound
	}
	if err != nil {
		return 0, err
	}
	if _, err := a.RequireBoardRole(ctx, userID, boardID, min); err != nil {
		return 0, err
	}
	return boardID, nil
}

// RequireCommentAuthor is an identity check, not a role check. Board admins
// and owners cannot touch another user's comment.
func (a *Authorizer) RequireCommentAuthor(ctx context.Context, userID, commentID uint) (*model.Comment, error) {
	comment, err := a.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.ErrResourceNotFound
	}
	if comment.UserID != userID {
		return nil, apperr.ErrNotCommentOwner
	}
	return comment, nil
}

// RequireNotBoardUser guards role grants: the target must not already be the
// owner or hold any role on the board.
func (a *Authorizer) RequireNotBoardUser(ctx context.Context, boardID, userID uint) error {
	role, _, err := a.BoardRole(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if role != RoleNone {
		return apperr.ErrAlreadyBoardUser
	}
	return nil
}

func forbiddenFor(min Role) error {
	switch min {
	case RoleVisitor:
		return apperr.ErrNotBoardVisitor
	case RoleMember:
		return apperr.ErrNotBoardMember
	default:
		return apperr.ErrNotBoardAdmin
	}
}
