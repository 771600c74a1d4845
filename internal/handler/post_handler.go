package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"animeverse/internal/repository"
)

type CreatePostRequest struct {
	TopicID int64  `json:"topicId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		AuthorID: authorID,
		TopicID:  req.TopicID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	// optional topic filter
	if rawTopic := r.URL.Query().Get("topicId"); rawTopic != "" {
		topicID, err := strconv.ParseInt(rawTopic, 10, 64)
		if err != nil {
			WriteError(w, "Неверный ID темы", http.StatusBadRequest)
			return
		}

		posts, err := h.PostService.ListByTopic(r.Context(), topicID)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		WriteSuccess(w, posts, http.StatusOK)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	posts, err := h.PostService.ListPosts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
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
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	err := h.PostService.UpdatePost(r.Context(), authorID, repository.UpdatePostRequest{
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пост обновлен"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	actorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}
	actorRole, _ := r.Context().Value("role").(string)

	if err := h.PostService.DeletePost(r.Context(), actorID, actorRole, postID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пост удален"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.PostService.LikePost(r.Context(), postID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Лайк засчитан"}, http.StatusOK)
}

func (h *Handlers) AttachImage(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	actorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}
	actorRole, _ := r.Context().Value("role").(string)

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.PostService.AttachImage(r.Context(), actorID, actorRole, postID, header.Filename, file, header.Size)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusOK)
}

func (h *Handlers) RemoveImage(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	actorID, ok := r.Context().Value("accountID").(int64)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}
	actorRole, _ := r.Context().Value("role").(string)

	if err := h.PostService.RemoveImage(r.Context(), actorID, actorRole, postID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Изображение удалено"}, http.StatusOK)
}
