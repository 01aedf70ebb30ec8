package repository

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *BoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

// GetForUser returns every board the user works in, either as owner or
// through a board_members row.
func (r *BoardRepository) GetForUser(ctx context.Context, userID uint) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Distinct("boards.*").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Order("boards.id").
		Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *BoardRepository) UpdateOwner(ctx context.Context, boardID, newOwnerID uint) error {
	return r.db.WithContext(ctx).Model(&model.Board{}).
		Where("id = ?", boardID).
		Update("owner_id", newOwnerID).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, id).Error
}
