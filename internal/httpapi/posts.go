package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

type postReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	strategy, err := views.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	posts, err := h.core.Posts.List(r.Context(), categoryParam(r), strategy)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(posts))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postReq
	if !decode(w, r, &req) {
		return
	}
	p, err := h.core.Posts.Create(r.Context(), models.PostInput{Title: req.Title, Content: req.Content, Category: req.Category})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.core.Posts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LikePost toggles the like flag of a post and returns the updated post.
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	p, err := h.core.Posts.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
