package repository

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type StatusListRepository struct {
	db *gorm.DB
}

func NewStatusListRepository(db *gorm.DB) *StatusListRepository {
	return &StatusListRepository{db: db}
}

func (r *StatusListRepository) Create(ctx context.Context, list *model.StatusList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *StatusListRepository) GetByID(ctx context.Context, id uint) (*model.StatusList, error) {
	var list model.StatusList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *StatusListRepository) GetByBoardID(ctx context.Context, boardID uint) ([]model.StatusList, error) {
	var lists []model.StatusList
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position").
		Find(&lists).Error
	return lists, err
}

func (r *StatusListRepository) Update(ctx context.Context, list *model.StatusList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *StatusListRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.StatusList{}, id).Error
}

// PositionTaken reports whether another status list in the board already
// occupies the position. excludeID skips the list being edited; pass 0 on
// create.
func (r *StatusListRepository) PositionTaken(ctx context.Context, boardID uint, position int, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.StatusList{}).
		Where("board_id = ? AND position = ?", boardID, position)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
