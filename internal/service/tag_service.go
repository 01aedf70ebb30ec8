package service

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
)

type tagStore interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, id uint) (*model.Tag, error)
	GetAll(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id uint) error
}

// TagService manages the global tag vocabulary. Tags are not board-scoped;
// any authenticated user may create, edit, or delete any tag.
type TagService struct {
	tags tagStore
}

func NewTagService(tags tagStore) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) GetAll(ctx context.Context) ([]model.Tag, error) {
	return s.tags.GetAll(ctx)
}

func (s *TagService) GetByID(ctx context.Context, tagID uint) (*model.Tag, error) {
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperr.ErrResourceNotFound
	}
	return tag, nil
}

func (s *TagService) Create(ctx context.Context, name, backgroundColor, fontColor string) (*model.Tag, error) {
	tag := &model.Tag{
		Name:            name,
		BackgroundColor: backgroundColor,
		FontColor:       fontColor,
	}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, tagID uint, name, backgroundColor, fontColor *string) (*model.Tag, error) {
	tag, err := s.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		tag.Name = *name
	}
	if backgroundColor != nil {
		tag.BackgroundColor = *backgroundColor
	}
	if fontColor != nil {
		tag.FontColor = *fontColor
	}

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, tagID uint) error {
	if _, err := s.GetByID(ctx, tagID); err != nil {
		return err
	}
	return s.tags.Delete(ctx, tagID)
}
