package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type ChecklistServiceInterface interface {
	GetByID(ctx context.Context, userID, checklistID uint) (*model.Checklist, error)
	GetByCard(ctx context.Context, userID, cardID uint) ([]model.Checklist, error)
	Create(ctx context.Context, userID uint, title string, cardID uint) (*model.Checklist, error)
	Update(ctx context.Context, userID, checklistID uint, title *string) (*model.Checklist, error)
	Delete(ctx context.Context, userID, checklistID uint) error
}

type ChecklistHandler struct {
	checklists ChecklistServiceInterface
}

func NewChecklistHandler(checklists ChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{checklists: checklists}
}

type CreateChecklistRequest struct {
	Title  string `json:"title" binding:"required"`
	CardID uint   `json:"card_id" binding:"required"`
}

type UpdateChecklistRequest struct {
	Title *string `json:"title"`
}

func (h *ChecklistHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	checklistID, ok := idParam(c)
	if !ok {
		return
	}

	checklist, err := h.checklists.GetByID(c.Request.Context(), userID, checklistID)
	if err != nil {
		respondError(c, err, "Failed to retrieve checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}

func (h *ChecklistHandler) GetByCard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	checklists, err := h.checklists.GetByCard(c.Request.Context(), userID, cardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve checklists")
		return
	}
	c.JSON(http.StatusOK, checklists)
}

func (h *ChecklistHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	checklist, err := h.checklists.Create(c.Request.Context(), userID, req.Title, req.CardID)
	if err != nil {
		respondError(c, err, "Failed to create checklist")
		return
	}
	c.JSON(http.StatusCreated, checklist)
}

func (h *ChecklistHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	checklistID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	checklist, err := h.checklists.Update(c.Request.Context(), userID, checklistID, req.Title)
	if err != nil {
		respondError(c, err, "Failed to update checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}

func (h *ChecklistHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	checklistID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.checklists.Delete(c.Request.Context(), userID, checklistID); err != nil {
		respondError(c, err, "Failed to delete checklist")
		return
	}
	c.Status(http.StatusNoContent)
}
