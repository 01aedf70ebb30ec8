package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type TagServiceInterface interface {
	GetAll(ctx context.Context) ([]model.Tag, error)
	GetByID(ctx context.Context, tagID uint) (*model.Tag, error)
	Create(ctx context.Context, name, backgroundColor, fontColor string) (*model.Tag, error)
	Update(ctx context.Context, tagID uint, name, backgroundColor, fontColor *string) (*model.Tag, error)
	Delete(ctx context.Context, tagID uint) error
}

// TagHandler exposes the global tag vocabulary. Only an authenticated
// session is required; tags have no board scoping.
type TagHandler struct {
	tags TagServiceInterface
}

func NewTagHandler(tags TagServiceInterface) *TagHandler {
	return &TagHandler{tags: tags}
}

type CreateTagRequest struct {
	Name            string `json:"name" binding:"required"`
	BackgroundColor string `json:"background_color"`
	FontColor       string `json:"font_color"`
}

type UpdateTagRequest struct {
	Name            *string `json:"name"`
	BackgroundColor *string `json:"background_color"`
	FontColor       *string `json:"font_color"`
}

func (h *TagHandler) GetAll(c *gin.Context) {
	tags, err := h.tags.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetByID(c *gin.Context) {
	tagID, ok := idParam(c)
	if !ok {
		return
	}

	tag, err := h.tags.GetByID(c.Request.Context(), tagID)
	if err != nil {
		respondError(c, err, "Failed to retrieve tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), req.Name, req.BackgroundColor, req.FontColor)
	if err != nil {
		respondError(c, err, "Failed to create tag")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) Update(c *gin.Context) {
	tagID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), tagID, req.Name, req.BackgroundColor, req.FontColor)
	if err != nil {
		respondError(c, err, "Failed to update tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) Delete(c *gin.Context) {
	tagID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.tags.Delete(c.Request.Context(), tagID); err != nil {
		respondError(c, err, "Failed to delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}
