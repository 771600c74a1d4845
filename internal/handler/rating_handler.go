package handlers

import (
	"encoding/json"
	"net/http"
)

type RatingResponse struct {
	PostID  int64    `json:"postId"`
	Average *float64 `json:"average"`
}

func (h *Handlers) RatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	authorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.RatingService.RatePost(r.Context(), postID, authorID, req.Value); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Оценка сохранена"}, http.StatusOK)
}

// GetAverageRating returns average=null for a post nobody rated yet.
func (h *Handlers) GetAverageRating(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	average, err := h.RatingService.AverageRating(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, RatingResponse{PostID: postID, Average: average}, http.StatusOK)
}
