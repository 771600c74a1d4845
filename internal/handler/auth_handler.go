package handlers

import (
	"encoding/json"
	"net/http"

	"animeverse/internal/repository"
)

// RegisterRequest carries presence-only tags: format and length rules live in
// the service, which reports them in aggregate per field.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Handle          string `json:"handle" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type AccountResponse struct {
	AccountID int64   `json:"accountId"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Handle    string  `json:"handle"`
	AvatarURL *string `json:"avatarUrl"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	IsBanned  bool    `json:"isBanned"`
}

type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	Account     AccountResponse `json:"account"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateAccountRequest{
		FullName:        req.FullName,
		Email:           req.Email,
		Handle:          req.Handle,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	account, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// logging in right after registration
	account, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		AccessToken: accessToken,
		Account:     accountResponse(account),
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	account, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{
		AccessToken: accessToken,
		Account:     accountResponse(account),
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Сессия завершена"}, http.StatusOK)
}

func (h *Handlers) GetCurrentAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	account, err := h.AccountService.Get(r.Context(), accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, accountResponse(account), http.StatusOK)
}
