package repository

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type BoardMemberRepository struct {
	db *gorm.DB
}

func NewBoardMemberRepository(db *gorm.DB) *BoardMemberRepository {
	return &BoardMemberRepository{db: db}
}

// GetRole returns the user's role on the board, or an empty string when the
// user has no board_members row.
func (r *BoardMemberRepository) GetRole(ctx context.Context, boardID, userID uint) (string, error) {
	var member model.BoardMember
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.Role, nil
}

func (r *BoardMemberRepository) Create(ctx context.Context, member *model.BoardMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Upsert creates the membership row or updates its role if one already
// exists, inside a transaction to avoid duplicate rows under races.
func (r *BoardMemberRepository) Upsert(ctx context.Context, boardID, userID uint, role string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BoardMember
		err := tx.Where("board_id = ? AND user_id = ?", boardID, userID).First(&existing).Error
		if err == nil {
			existing.Role = role
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&model.BoardMember{BoardID: boardID, UserID: userID, Role: role}).Error
	})
}

func (r *BoardMemberRepository) Delete(ctx context.Context, boardID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&model.BoardMember{}).Error
}

// GetByBoard returns the membership rows of a board with users preloaded.
func (r *BoardMemberRepository) GetByBoard(ctx context.Context, boardID uint) ([]model.BoardMember, error) {
	var members []model.BoardMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("board_id = ?", boardID).
		Find(&members).Error
	return members, err
}
