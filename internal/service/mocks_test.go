package service_test

import (
	"context"

	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Мок репозитория досок
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetForUser(ctx context.Context, userID uint) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) UpdateOwner(ctx context.Context, boardID, newOwnerID uint) error {
	args := m.Called(ctx, boardID, newOwnerID)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Мок репозитория участников досок
type MockBoardMemberRepository struct {
	mock.Mock
}

func (m *MockBoardMemberRepository) GetRole(ctx context.Context, boardID, userID uint) (string, error) {
	args := m.Called(ctx, boardID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockBoardMemberRepository) Create(ctx context.Context, member *model.BoardMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) Upsert(ctx context.Context, boardID, userID uint, role string) error {
	args := m.Called(ctx, boardID, userID, role)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) Delete(ctx context.Context, boardID, userID uint) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

// Мок резолвера цепочки владения
type MockChainRepository struct {
	mock.Mock
}

func (m *MockChainRepository) AncestorBoardID(ctx context.Context, res repository.Resource, id uint) (uint, error) {
	args := m.Called(ctx, res, id)
	return args.Get(0).(uint), args.Error(1)
}

// Мок репозитория комментариев
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	comment := args.Get(0)
	if comment == nil {
		return nil, args.Error(1)
	}
	return comment.(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByCardID(ctx context.Context, cardID uint) ([]model.Comment, error) {
	args := m.Called(ctx, cardID)
	comments := args.Get(0)
	if comments == nil {
		return nil, args.Error(1)
	}
	return comments.([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByUserID(ctx context.Context, userID uint) ([]model.Comment, error) {
	args := m.Called(ctx, userID)
	comments := args.Get(0)
	if comments == nil {
		return nil, args.Error(1)
	}
	return comments.([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Мок репозитория карточек для операций на уровне доски
type MockBoardCardRepository struct {
	mock.Mock
}

func (m *MockBoardCardRepository) RemoveUserFromBoardCards(ctx context.Context, boardID, userID uint) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

// Мок репозитория статус-листов
type MockStatusListRepository struct {
	mock.Mock
}

func (m *MockStatusListRepository) Create(ctx context.Context, list *model.StatusList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockStatusListRepository) GetByID(ctx context.Context, id uint) (*model.StatusList, error) {
	args := m.Called(ctx, id)
	list := args.Get(0)
	if list == nil {
		return nil, args.Error(1)
	}
	return list.(*model.StatusList), args.Error(1)
}

func (m *MockStatusListRepository) GetByBoardID(ctx context.Context, boardID uint) ([]model.StatusList, error) {
	args := m.Called(ctx, boardID)
	lists := args.Get(0)
	if lists == nil {
		return nil, args.Error(1)
	}
	return lists.([]model.StatusList), args.Error(1)
}

func (m *MockStatusListRepository) Update(ctx context.Context, list *model.StatusList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockStatusListRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatusListRepository) PositionTaken(ctx context.Context, boardID uint, position int, excludeID uint) (bool, error) {
	args := m.Called(ctx, boardID, position, excludeID)
	return args.Bool(0), args.Error(1)
}
