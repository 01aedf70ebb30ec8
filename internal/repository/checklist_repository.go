package repository

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) Create(ctx context.Context, checklist *model.Checklist) error {
	return r.db.WithContext(ctx).Create(checklist).Error
}

func (r *ChecklistRepository) GetByID(ctx context.Context, id uint) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&checklist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checklist, nil
}

func (r *ChecklistRepository) GetByCardID(ctx context.Context, cardID uint) ([]model.Checklist, error) {
	var checklists []model.Checklist
	err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Order("id").Find(&checklists).Error
	return checklists, err
}

func (r *ChecklistRepository) Update(ctx context.Context, checklist *model.Checklist) error {
	return r.db.WithContext(ctx).Save(checklist).Error
}

func (r *ChecklistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Checklist{}, id).Error
}
