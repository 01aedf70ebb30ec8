package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type AttachmentServiceInterface interface {
	GetByID(ctx context.Context, userID, attachmentID uint) (*model.Attachment, error)
	GetByCard(ctx context.Context, userID, cardID uint) ([]model.Attachment, error)
	Create(ctx context.Context, userID uint, content string, cardID uint) (*model.Attachment, error)
	Update(ctx context.Context, userID, attachmentID uint, content *string) (*model.Attachment, error)
	Delete(ctx context.Context, userID, attachmentID uint) error
}

type AttachmentHandler struct {
	attachments AttachmentServiceInterface
}

func NewAttachmentHandler(attachments AttachmentServiceInterface) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments}
}

type CreateAttachmentRequest struct {
	Content string `json:"content" binding:"required"`
	CardID  uint   `json:"card_id" binding:"required"`
}

type UpdateAttachmentRequest struct {
	Content *string `json:"content"`
}

func (h *AttachmentHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	attachmentID, ok := idParam(c)
	if !ok {
		return
	}

	attachment, err := h.attachments.GetByID(c.Request.Context(), userID, attachmentID)
	if err != nil {
		respondError(c, err, "Failed to retrieve attachment")
		return
	}
	c.JSON(http.StatusOK, attachment)
}

func (h *AttachmentHandler) GetByCard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	cardID, ok := idParam(c)
	if !ok {
		return
	}

	attachments, err := h.attachments.GetByCard(c.Request.Context(), userID, cardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve attachments")
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func (h *AttachmentHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	attachment, err := h.attachments.Create(c.Request.Context(), userID, req.Content, req.CardID)
	if err != nil {
		respondError(c, err, "Failed to create attachment")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func (h *AttachmentHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	attachmentID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	attachment, err := h.attachments.Update(c.Request.Context(), userID, attachmentID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to update attachment")
		return
	}
	c.JSON(http.StatusOK, attachment)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	attachmentID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.attachments.Delete(c.Request.Context(), userID, attachmentID); err != nil {
		respondError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
