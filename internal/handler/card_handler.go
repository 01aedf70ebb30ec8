package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/service"

	"github.com/gin-gonic/gin"
)

type CardServiceInterface interface {
	GetByUser(ctx context.Context, userID uint) ([]model.Card, error)
	GetByID(ctx context.Context, userID, cardID uint) (*model.Card, error)
	GetByBoard(ctx context.Context, userID, boardID uint) ([]model.Card, error)
	GetByStatusList(ctx context.Context, userID, listID uint) ([]model.Card, error)
	Create(ctx context.Context, userID uint, in service.CreateCardInput) (*model.Card, error)
	Update(ctx context.Context, userID, cardID uint, in service.UpdateCardInput) (*model.Card, error)
	Move(ctx context.Context, userID, cardID, statusListID uint) (*model.Card, error)
	Delete(ctx context.Context, userID, cardID uint) error
	AddUser(ctx context.Context, actorID, cardID, targetID uint) error
	RemoveUser(ctx context.Context, actorID, cardID, targetID uint) error
}

type CardHandler struct {
	cards CardServiceInterface
}

func NewCardHandler(cards CardServiceInterface) *CardHandler {
	return &CardHandler{cards: cards}
}

type CreateCardRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	BeginDate    *time.Time `json:"begin_date"`
	EndDate      *time.Time `json:"end_date"`
	StatusListID uint       `json:"status_list_id" binding:"required"`
	TagID        *uint      `json:"tag_id"`
}

type UpdateCardRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	BeginDate    *time.Time `json:"begin_date"`
	EndDate      *time.Time `json:"end_date"`
	StatusListID *uint      `json:"status_list_id"`
	TagID        *uint      `json:"tag_id"`
}

type MoveCardRequest struct {
	StatusListID uint `json:"status_list_id" binding:"required"`
}

type ManageCardUserRequest struct {
	CardID uint `json:"card_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
}

// GetByUser lists the cards the session user is assigned to.
func (h *CardHandler) GetByUser(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	cards, err := h.cards.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	card, err := h.cards.GetByID(c.Request.Context(), userID, cardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) GetByBoard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	boardID, ok := idParam(c)
	if !ok {
		return
	}

	cards, err := h.cards.GetByBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetByStatusList(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	listID, ok := idParam(c)
	if !ok {
		return
	}

	cards, err := h.cards.GetByStatusList(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	card, err := h.cards.Create(c.Request.Context(), userID, service.CreateCardInput{
		Title:        req.Title,
		Description:  req.Description,
		BeginDate:    req.BeginDate,
		EndDate:      req.EndDate,
		StatusListID: req.StatusListID,
		TagID:        req.TagID,
	})
	if err != nil {
		respondError(c, err, "Failed to create card")
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	card, err := h.cards.Update(c.Request.Context(), userID, cardID, service.UpdateCardInput{
		Title:        req.Title,
		Description:  req.Description,
		BeginDate:    req.BeginDate,
		EndDate:      req.EndDate,
		StatusListID: req.StatusListID,
		TagID:        req.TagID,
	})
	if err != nil {
		respondError(c, err, "Failed to update card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	card, err := h.cards.Move(c.Request.Context(), userID, cardID, req.StatusListID)
	if err != nil {
		respondError(c, err, "Failed to move card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.cards.Delete(c.Request.Context(), userID, cardID); err != nil {
		respondError(c, err, "Failed to delete card")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CardHandler) AddUser(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req ManageCardUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.cards.AddUser(c.Request.Context(), userID, req.CardID, req.UserID); err != nil {
		respondError(c, err, "Failed to add card user")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CardHandler) RemoveUser(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req ManageCardUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.cards.RemoveUser(c.Request.Context(), userID, req.CardID, req.UserID); err != nil {
		respondError(c, err, "Failed to remove card user")
		return
	}
	c.Status(http.StatusNoContent)
}
