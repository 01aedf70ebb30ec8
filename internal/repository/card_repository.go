package repository

import (
	"context"
	"errors"

	"github.com/bananahell/kanban-challenge/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uint) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Preload("Users").Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetByStatusListID(ctx context.Context, statusListID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("status_list_id = ?", statusListID).
		Order("id").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) GetByBoardID(ctx context.Context, boardID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Joins("JOIN status_lists ON status_lists.id = cards.status_list_id").
		Where("status_lists.board_id = ?", boardID).
		Order("cards.id").
		Find(&cards).Error
	return cards, err
}

// GetByAssignee returns the cards the user appears in through card_users.
func (r *CardRepository) GetByAssignee(ctx context.Context, userID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Joins("JOIN card_users ON card_users.card_id = cards.id").
		Where("card_users.user_id = ?", userID).
		Order("cards.id").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Omit("Users").Save(card).Error
}

// Move updates only the card's status list.
func (r *CardRepository) Move(ctx context.Context, cardID, statusListID uint) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", cardID).
		Update("status_list_id", statusListID).Error
}

func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Card{}, id).Error
}

func (r *CardRepository) AddUser(ctx context.Context, cardID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO card_users (card_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		cardID, userID,
	).Error
}

func (r *CardRepository) RemoveUser(ctx context.Context, cardID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM card_users WHERE card_id = ? AND user_id = ?",
		cardID, userID,
	).Error
}

// RemoveUserFromBoardCards strips the user from the assignee set of every
// card in the board. One statement, so the cascade applies atomically and is
// idempotent.
func (r *CardRepository) RemoveUserFromBoardCards(ctx context.Context, boardID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		`DELETE FROM card_users
		 WHERE user_id = ?
		   AND card_id IN (
		     SELECT cards.id FROM cards
		     JOIN status_lists ON status_lists.id = cards.status_list_id
		     WHERE status_lists.board_id = ?
		   )`,
		userID, boardID,
	).Error
}
