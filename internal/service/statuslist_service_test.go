package service_test

import (
	"context"
	"testing"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/model"
	"github.com/bananahell/kanban-challenge/internal/repository"
	"github.com/bananahell/kanban-challenge/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupStatusListService() (*service.StatusListService, *MockBoardRepository, *MockBoardMemberRepository, *MockChainRepository, *MockStatusListRepository) {
	boards := new(MockBoardRepository)
	members := new(MockBoardMemberRepository)
	chain := new(MockChainRepository)
	comments := new(MockCommentRepository)
	lists := new(MockStatusListRepository)

	authz := service.NewAuthorizer(boards, members, chain, comments)
	svc := service.NewStatusListService(authz, lists)
	return svc, boards, members, chain, lists
}

func TestStatusListCreate_Success(t *testing.T) {
	// Arrange
	svc, boards, members, _, lists := setupStatusListService()

	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleMember, nil)

	lists.On("PositionTaken", mock.Anything, uint(1), 0, uint(0)).Return(false, nil)
	lists.On("Create", mock.Anything, mock.AnythingOfType("*model.StatusList")).Return(nil)

	// Act - позиция 0 допустима
	list, err := svc.Create(context.Background(), 20, "To Do", 0, 1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, list.Position)
	lists.AssertExpectations(t)
}

func TestStatusListCreate_PositionTaken(t *testing.T) {
	// Arrange
	svc, boards, members, _, lists := setupStatusListService()

	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleMember, nil)

	// Позиция 2 уже занята соседним листом
	lists.On("PositionTaken", mock.Anything, uint(1), 2, uint(0)).Return(true, nil)

	// Act
	_, err := svc.Create(context.Background(), 20, "Doing", 2, 1)

	// Assert
	assert.ErrorIs(t, err, apperr.ErrPositionTaken)
	lists.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStatusListCreate_VisitorForbidden(t *testing.T) {
	// Arrange
	svc, boards, members, _, lists := setupStatusListService()

	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleVisitor, nil)

	// Act
	_, err := svc.Create(context.Background(), 20, "To Do", 0, 1)

	// Assert
	assert.ErrorIs(t, err, apperr.ErrNotBoardMember)
	lists.AssertNotCalled(t, "PositionTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusListUpdate_PositionTakenOnMove(t *testing.T) {
	// Arrange
	svc, boards, members, chain, lists := setupStatusListService()

	chain.On("AncestorBoardID", mock.Anything, repository.ResourceStatusList, uint(5)).Return(uint(1), nil)
	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleMember, nil)

	list := &model.StatusList{ID: 5, Name: "To Do", Position: 0, BoardID: 1}
	lists.On("GetByID", mock.Anything, uint(5)).Return(list, nil)

	// Новая позиция занята другим листом; сам редактируемый лист исключен из проверки
	lists.On("PositionTaken", mock.Anything, uint(1), 3, uint(5)).Return(true, nil)

	position := 3

	// Act
	_, err := svc.Update(context.Background(), 20, 5, nil, &position)

	// Assert
	assert.ErrorIs(t, err, apperr.ErrPositionTaken)
	lists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStatusListUpdate_SamePositionSkipsCheck(t *testing.T) {
	// Arrange
	svc, boards, members, chain, lists := setupStatusListService()

	chain.On("AncestorBoardID", mock.Anything, repository.ResourceStatusList, uint(5)).Return(uint(1), nil)
	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleMember, nil)

	list := &model.StatusList{ID: 5, Name: "To Do", Position: 2, BoardID: 1}
	lists.On("GetByID", mock.Anything, uint(5)).Return(list, nil)
	lists.On("Update", mock.Anything, list).Return(nil)

	name := "Done"
	position := 2

	// Act - позиция не меняется, проверка уникальности не нужна
	got, err := svc.Update(context.Background(), 20, 5, &name, &position)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Done", got.Name)
	lists.AssertNotCalled(t, "PositionTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusListGetByID_VisitorAllowed(t *testing.T) {
	// Arrange
	svc, boards, members, chain, lists := setupStatusListService()

	chain.On("AncestorBoardID", mock.Anything, repository.ResourceStatusList, uint(5)).Return(uint(1), nil)
	board := &model.Board{ID: 1, OwnerID: 10}
	boards.On("GetByID", mock.Anything, uint(1)).Return(board, nil)
	members.On("GetRole", mock.Anything, uint(1), uint(20)).Return(model.RoleVisitor, nil)

	list := &model.StatusList{ID: 5, Name: "To Do", Position: 0, BoardID: 1}
	lists.On("GetByID", mock.Anything, uint(5)).Return(list, nil)

	// Act
	got, err := svc.GetByID(context.Background(), 20, 5)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, list, got)
}
