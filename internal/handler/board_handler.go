package handler

import (
	"context"
	"net/http"

	"github.com/bananahell/kanban-challenge/internal/model"

	"github.com/gin-gonic/gin"
)

type BoardServiceInterface interface {
	GetForUser(ctx context.Context, userID uint) ([]model.Board, error)
	GetByID(ctx context.Context, userID, boardID uint) (*model.Board, error)
	Create(ctx context.Context, userID uint, title, background string) (*model.Board, error)
	Update(ctx context.Context, userID, boardID uint, title, background *string) (*model.Board, error)
	Delete(ctx context.Context, userID, boardID uint) error
	AddUser(ctx context.Context, actorID, boardID, targetID uint, role string) (*model.BoardMember, error)
	RemoveUser(ctx context.Context, actorID, boardID, targetID uint) error
	PassOwner(ctx context.Context, actorID, boardID, targetID uint) (*model.Board, error)
}

type BoardHandler struct {
	boards BoardServiceInterface
}

func NewBoardHandler(boards BoardServiceInterface) *BoardHandler {
	return &BoardHandler{boards: boards}
}

type CreateBoardRequest struct {
	Title      string `json:"title" binding:"required"`
	Background string `json:"background"`
}

type UpdateBoardRequest struct {
	Title      *string `json:"title"`
	Background *string `json:"background"`
}

// ManageBoardUserRequest targets a user for the board role-mutation
// endpoints.
type ManageBoardUserRequest struct {
	BoardID uint `json:"board_id" binding:"required"`
	UserID  uint `json:"user_id" binding:"required"`
}

func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	boards, err := h.boards.GetForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve boards")
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	boardID, ok := idParam(c)
	if !ok {
		return
	}

	board, err := h.boards.GetByID(c.Request.Context(), userID, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := h.boards.Create(c.Request.Context(), userID, req.Title, req.Background)
	if err != nil {
		respondError(c, err, "Failed to create board")
		return
	}
	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	boardID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := h.boards.Update(c.Request.Context(), userID, boardID, req.Title, req.Background)
	if err != nil {
		respondError(c, err, "Failed to update board")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	boardID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.boards.Delete(c.Request.Context(), userID, boardID); err != nil {
		respondError(c, err, "Failed to delete board")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) AddAdmin(c *gin.Context) {
	h.addUser(c, model.RoleAdmin)
}

func (h *BoardHandler) AddMember(c *gin.Context) {
	h.addUser(c, model.RoleMember)
}

func (h *BoardHandler) AddVisitor(c *gin.Context) {
	h.addUser(c, model.RoleVisitor)
}

func (h *BoardHandler) addUser(c *gin.Context, role string) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req ManageBoardUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	member, err := h.boards.AddUser(c.Request.Context(), userID, req.BoardID, req.UserID, role)
	if err != nil {
		respondError(c, err, "Failed to add board user")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *BoardHandler) RemoveUser(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req ManageBoardUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.boards.RemoveUser(c.Request.Context(), userID, req.BoardID, req.UserID); err != nil {
		respondError(c, err, "Failed to remove board user")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) PassOwner(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req ManageBoardUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := h.boards.PassOwner(c.Request.Context(), userID, req.BoardID, req.UserID)
	if err != nil {
		respondError(c, err, "Failed to pass board ownership")
		return
	}
	c.JSON(http.StatusOK, board)
}
