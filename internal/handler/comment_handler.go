package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type CommentServiceInterface interface {
	GetByUser(ctx context.Context, userID uint) ([]model.Comment, error)
	GetByID(ctx context.Context, userID, commentID uint) (*model.Comment, error)
	GetByCard(ctx context.Context, userID, cardID uint) ([]model.Comment, error)
	Create(ctx context.Context, userID uint, message string, cardID uint) (*model.Comment, error)
	Update(ctx context.Context, userID, commentID uint, message *string) (*model.Comment, error)
	Delete(ctx context.Context, userID, commentID uint) error
}

type CommentHandler struct {
	comments CommentServiceInterface
}

func NewCommentHandler(comments CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type CreateCommentRequest struct {
	Message string `json:"message" binding:"required"`
	CardID  uint   `json:"card_id" binding:"required"`
}

type UpdateCommentRequest struct {
	Message *string `json:"message"`
}

// GetByUser lists the session user's own comments.
func (h *CommentHandler) GetByUser(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	comments, err := h.comments.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c)
	if !ok {
		return
	}

	comment, err := h.comments.GetByID(c.Request.Context(), userID, commentID)
	if err != nil {
		respondError(c, err, "Failed to retrieve comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) GetByCard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	comments, err := h.comments.GetByCard(c.Request.Context(), userID, cardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), userID, req.Message, req.CardID)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), userID, commentID, req.Message)
	if err != nil {
		respondError(c, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), userID, commentID); err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
