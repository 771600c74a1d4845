package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/service"
	"animeverse/internal/validation"
)

func TestRegisterHandler_Success(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"fullName":        "Ana Lee",
		"email":           "ana@x.com",
		"handle":          "ana",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}

	account := &models.Account{
		AccountID: 1,
		FullName:  "Ana Lee",
		Email:     "ana@x.com",
		Handle:    "ana",
		Role:      models.RoleUser,
		Status:    models.StatusActive,
	}

	mockAuthService.On("Register", mock.Anything, repository.CreateAccountRequest{
		FullName:        "Ana Lee",
		Email:           "ana@x.com",
		Handle:          "ana",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}).Return(account, nil)

	mockAuthService.On("Login", mock.Anything, "ana@x.com", "secret1").
		Return(account, "access-token-123", nil)

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusCreated)

	assert.Equal(t, "access-token-123", response["accessToken"])

	accountData, ok := response["account"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), accountData["accountId"])
	assert.Equal(t, "ana@x.com", accountData["email"])
	assert.Equal(t, models.RoleUser, accountData["role"])

	mockAuthService.AssertExpectations(t)
}

func TestRegisterHandler_AggregateValidationErrors(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"fullName":        "Ana Lee",
		"email":           "не-email",
		"handle":          "ana",
		"password":        "123",
		"confirmPassword": "123",
	}

	mockAuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, validation.FieldErrors{
			{Field: "email", Reason: validation.ReasonInvalidFormat},
			{Field: "password", Reason: validation.ReasonTooShort},
		})

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	fields, ok := response["fields"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, fields, 2)

	mockAuthService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"email": "ana@x.com",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Неверные данные")
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_EmailAlreadyExists(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"fullName":        "Ana Lee",
		"email":           "ana@x.com",
		"handle":          "ana",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}

	mockAuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, &service.ConflictError{Field: "email"})

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusConflict, "email")
	mockAuthService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterHandler_MalformedJSON(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Неверный формат запроса")
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

// Login tests

func TestLoginHandler_Success(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"email":    "ana@x.com",
		"password": "secret1",
	}

	mockAuthService.On("Login", mock.Anything, "ana@x.com", "secret1").
		Return(&models.Account{
			AccountID: 1,
			Email:     "ana@x.com",
			Handle:    "ana",
			Role:      models.RoleUser,
		}, "access-token-456", nil)

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "access-token-456", response["accessToken"])

	mockAuthService.AssertExpectations(t)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"email":    "ana@x.com",
		"password": "wrongpass",
	}

	mockAuthService.On("Login", mock.Anything, "ana@x.com", "wrongpass").
		Return(nil, "", &service.AuthError{Reason: service.AuthInvalidCredentials})

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusUnauthorized, "неверный email или пароль")
	mockAuthService.AssertExpectations(t)
}

func TestLoginHandler_BannedAccount(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"email":    "banned@x.com",
		"password": "secret1",
	}

	mockAuthService.On("Login", mock.Anything, "banned@x.com", "secret1").
		Return(nil, "", &service.AuthError{Reason: service.AuthBanned})

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusForbidden, "аккаунт заблокирован")
	mockAuthService.AssertExpectations(t)
}

func TestLoginHandler_MissingPassword(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	requestBody := map[string]interface{}{
		"email": "ana@x.com",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Неверные данные")
	mockAuthService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogoutHandler_Success(t *testing.T) {
	// Arrange
	mockAuthService := new(MockAuthService)
	handler := createTestHandler()
	handler.AuthService = mockAuthService

	mockAuthService.On("Logout").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.Logout(rr, req)

	// Assert
	assertJSONSuccess(t, rr, http.StatusOK)
	mockAuthService.AssertExpectations(t)
}

func TestGetCurrentAccount_Success(t *testing.T) {
	// Arrange
	mockAccountService := new(MockAccountService)
	handler := createTestHandler()
	handler.AccountService = mockAccountService

	mockAccountService.On("Get", mock.Anything, int64(1)).
		Return(&models.Account{
			AccountID: 1,
			FullName:  "Ana Lee",
			Email:     "ana@x.com",
			Handle:    "ana",
			Role:      models.RoleUser,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), "accountID", int64(1)))
	rr := httptest.NewRecorder()

	// Act
	handler.GetCurrentAccount(rr, req)

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "ana@x.com", response["email"])
}

func TestGetCurrentAccount_Unauthorized(t *testing.T) {
	// Arrange
	mockAccountService := new(MockAccountService)
	handler := createTestHandler()
	handler.AccountService = mockAccountService

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.GetCurrentAccount(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusUnauthorized, "Требуется аутентификация")
	mockAccountService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
