package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Мок сервиса аутентификации
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func setupAuthTest() (*gin.Engine, *MockAuthService) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockAuth := new(MockAuthService)
	authHandler := handler.NewAuthHandler(mockAuth)

	r.POST("/auth/signUp", authHandler.SignUp)
	r.POST("/auth/signIn", authHandler.SignIn)
	return r, mockAuth
}

func TestSignUp_Success(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	mockAuth.On("SignUp", mock.Anything, "Test User", "test@example.com", "password123").
		Return("some-token", nil)

	// Создаем тестовый запрос
	reqBody := handler.SignUpRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signUp", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "some-token", response.AccessToken)

	mockAuth.AssertExpectations(t)
}

func TestSignUp_CredentialsTaken(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	mockAuth.On("SignUp", mock.Anything, "Test User", "existing@example.com", "password123").
		Return("", apperr.ErrCredentialsTaken)

	// Создаем тестовый запрос
	reqBody := handler.SignUpRequest{
		Name:     "Test User",
		Email:    "existing@example.com",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signUp", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "credentials taken", response["error"])
}

func TestSignUp_InvalidEmail(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	// Создаем тестовый запрос с неверным email
	reqBody := map[string]string{
		"name":     "Test User",
		"email":    "not-an-email",
		"password": "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signUp", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockAuth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_ShortPassword(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	// Создаем тестовый запрос со слишком коротким паролем
	reqBody := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signUp", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockAuth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignIn_Success(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	mockAuth.On("SignIn", mock.Anything, "test@example.com", "password123").
		Return("some-token", nil)

	// Создаем тестовый запрос
	reqBody := handler.SignInRequest{
		Email:    "test@example.com",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signIn", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "some-token", response.AccessToken)
}

func TestSignIn_EmailNotFound(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	mockAuth.On("SignIn", mock.Anything, "nonexistent@example.com", "password123").
		Return("", apperr.ErrEmailNotFound)

	// Создаем тестовый запрос
	reqBody := handler.SignInRequest{
		Email:    "nonexistent@example.com",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signIn", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "email not found in database", response["error"])
}

func TestSignIn_IncorrectPassword(t *testing.T) {
	// Arrange
	router, mockAuth := setupAuthTest()

	mockAuth.On("SignIn", mock.Anything, "test@example.com", "wrong_password").
		Return("", apperr.ErrIncorrectPassword)

	// Создаем тестовый запрос с неверным паролем
	reqBody := handler.SignInRequest{
		Email:    "test@example.com",
		Password: "wrong_password",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/signIn", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "incorrect password", response["error"])
}
