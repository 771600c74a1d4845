package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type TempBanRequest struct {
	Reason        string `json:"reason" validate:"required"`
	DurationHours int    `json:"durationHours" validate:"required,min=1"`
}

type BanContentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *Handlers) BanAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.SetAccountBanned(r.Context(), accountID, true); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Аккаунт заблокирован"}, http.StatusOK)
}

func (h *Handlers) UnbanAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.SetAccountBanned(r.Context(), accountID, false); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Блокировка снята"}, http.StatusOK)
}

func (h *Handlers) TempBanAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
		return
	}

	var req TempBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	ban, err := h.ModerationService.IssueTemporaryBan(r.Context(), accountID, req.Reason, req.DurationHours)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, ban, http.StatusCreated)
}

func (h *Handlers) ListBans(w http.ResponseWriter, r *http.Request) {
	var accountID int64
	if raw := r.URL.Query().Get("accountId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, "Неверный ID аккаунта", http.StatusBadRequest)
			return
		}
		accountID = parsed
	}

	bans, err := h.ModerationService.ListBans(r.Context(), accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, bans, http.StatusOK)
}

func (h *Handlers) BanPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req BanContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.BanPost(r.Context(), postID, req.Reason); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пост заблокирован"}, http.StatusOK)
}

func (h *Handlers) BanComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID комментария", http.StatusBadRequest)
		return
	}

	var req BanContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.BanComment(r.Context(), commentID, req.Reason); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Комментарий заблокирован"}, http.StatusOK)
}

func (h *Handlers) ReportPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	reporterID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Reason string `json:"reason" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	report, err := h.ModerationService.ReportPost(r.Context(), postID, reporterID, req.Reason)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, report, http.StatusCreated)
}

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ModerationService.ListReports(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	WriteSuccess(w, reports, http.StatusOK)
}

func (h *Handlers) ReviewReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID жалобы", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.ReviewReport(r.Context(), reportID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Жалоба рассмотрена"}, http.StatusOK)
}

func (h *Handlers) DismissReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID жалобы", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.DismissReport(r.Context(), reportID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Жалоба отклонена"}, http.StatusOK)
}

func (h *Handlers) PendingReportCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.ModerationService.PendingReportCount(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]int{"pending": count}, http.StatusOK)
}
