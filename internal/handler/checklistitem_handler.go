package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type ChecklistItemServiceInterface interface {
	GetByID(ctx context.Context, userID, itemID uint) (*model.ChecklistItem, error)
	GetByChecklist(ctx context.Context, userID, checklistID uint) ([]model.ChecklistItem, error)
	Create(ctx context.Context, userID uint, description string, checklistID uint) (*model.ChecklistItem, error)
	Update(ctx context.Context, userID, itemID uint, description *string, isDone *bool) (*model.ChecklistItem, error)
	Delete(ctx context.Context, userID, itemID uint) error
}

type ChecklistItemHandler struct {
	items ChecklistItemServiceInterface
}

func NewChecklistItemHandler(items ChecklistItemServiceInterface) *ChecklistItemHandler {
	return &ChecklistItemHandler{items: items}
}

type CreateChecklistItemRequest struct {
	Description string `json:"description" binding:"required"`
	ChecklistID uint   `json:"checklist_id" binding:"required"`
}

type UpdateChecklistItemRequest struct {
	Description *string `json:"description"`
	IsDone      *bool   `json:"is_done"`
}

func (h *ChecklistItemHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	itemID, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.items.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err, "Failed to retrieve checklist item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ChecklistItemHandler) GetByChecklist(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	checklistID, ok := idParam(c)
	if !ok {
		return
	}

	items, err := h.items.GetByChecklist(c.Request.Context(), userID, checklistID)
	if err != nil {
		respondError(c, err, "Failed to retrieve checklist items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ChecklistItemHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := h.items.Create(c.Request.Context(), userID, req.Description, req.ChecklistID)
	if err != nil {
		respondError(c, err, "Failed to create checklist item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ChecklistItemHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	itemID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := h.items.Update(c.Request.Context(), userID, itemID, req.Description, req.IsDone)
	if err != nil {
		respondError(c, err, "Failed to update checklist item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ChecklistItemHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	itemID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err, "Failed to delete checklist item")
		return
	}
	c.Status(http.StatusNoContent)
}
