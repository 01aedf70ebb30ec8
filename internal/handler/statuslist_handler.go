package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type StatusListServiceInterface interface {
	GetByID(ctx context.Context, userID, listID uint) (*model.StatusList, error)
	GetByBoard(ctx context.Context, userID, boardID uint) ([]model.StatusList, error)
	Create(ctx context.Context, userID uint, name string, position int, boardID uint) (*model.StatusList, error)
	Update(ctx context.Context, userID, listID uint, name *string, position *int) (*model.StatusList, error)
	Delete(ctx context.Context, userID, listID uint) error
}

type StatusListHandler struct {
	lists StatusListServiceInterface
}

func NewStatusListHandler(lists StatusListServiceInterface) *StatusListHandler {
	return &StatusListHandler{lists: lists}
}

// Position is a pointer so 0 survives required-field validation.
type CreateStatusListRequest struct {
	Name     string `json:"name" binding:"required"`
	Position *int   `json:"position" binding:"required"`
	BoardID  uint   `json:"board_id" binding:"required"`
}

type UpdateStatusListRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

func (h *StatusListHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	listID, ok := idParam(c)
	if !ok {
		return
	}

	list, err := h.lists.GetByID(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err, "Failed to retrieve status list")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *StatusListHandler) GetByBoard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	boardID, ok := idParam(c)
	if !ok {
		return
	}

	lists, err := h.lists.GetByBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve status lists")
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *StatusListHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateStatusListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	list, err := h.lists.Create(c.Request.Context(), userID, req.Name, *req.Position, req.BoardID)
	if err != nil {
		respondError(c, err, "Failed to create status list")
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *StatusListHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	listID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateStatusListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	list, err := h.lists.Update(c.Request.Context(), userID, listID, req.Name, req.Position)
	if err != nil {
		respondError(c, err, "Failed to update status list")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *StatusListHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	listID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.lists.Delete(c.Request.Context(), userID, listID); err != nil {
		respondError(c, err, "Failed to delete status list")
		return
	}
	c.Status(http.StatusNoContent)
}
