package handlers

import (
	"encoding/json"
	"net/http"

	"animeverse/internal/repository"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
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
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), repository.CreateCommentRequest{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListByPost(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID комментария", http.StatusBadRequest)
		return
	}

	actorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}
	actorRole, _ := r.Context().Value("role").(string)

	if err := h.CommentService.DeleteComment(r.Context(), actorID, actorRole, commentID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Комментарий удален"}, http.StatusOK)
}
