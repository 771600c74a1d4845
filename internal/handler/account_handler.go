package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"animeverse/internal/models"
	"animeverse/internal/repository"
)

func accountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		FullName:  account.FullName,
		Email:     account.Email,
		Handle:    account.Handle,
		AvatarURL: account.AvatarURL,
		Role:      account.Role,
		Status:    account.Status,
		IsBanned:  account.IsBanned,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	account, err := h.AccountService.Get(r.Context(), accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, accountResponse(account), http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	currentID, _ := r.Context().Value("accountID").(int64)
	currentRole, _ := r.Context().Value("role").(string)
	if accountID != currentID && currentRole != models.RoleAdmin {
		WriteError(w, "Нет прав для обновления этого аккаунта", http.StatusForbidden)
		return
	}

	var req struct {
		FullName  string  `json:"fullName" validate:"required"`
		Email     string  `json:"email" validate:"required,email"`
		AvatarURL *string `json:"avatarUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateProfileRequest{
		AccountID: accountID,
		FullName:  req.FullName,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	}

	if err := h.AccountService.UpdateProfile(r.Context(), serviceReq); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Профиль обновлен"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	currentID, _ := r.Context().Value("accountID").(int64)
	if accountID != currentID {
		WriteError(w, "Нет прав для изменения этого аккаунта", http.StatusForbidden)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := h.AccountService.UploadAvatar(r.Context(), accountID, header.Filename, file, header.Size)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"avatarUrl": avatarURL}, http.StatusOK)
}

func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	currentID, _ := r.Context().Value("accountID").(int64)
	currentRole, _ := r.Context().Value("role").(string)
	if accountID != currentID && currentRole != models.RoleAdmin {
		WriteError(w, "Нет прав для удаления этого аккаунта", http.StatusForbidden)
		return
	}

	if err := h.AccountService.Delete(r.Context(), accountID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Аккаунт удален"}, http.StatusOK)
}
