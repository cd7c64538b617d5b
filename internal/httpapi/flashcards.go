package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

type flashcardReq struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
	Topic    *string `json:"topic"`
}

func (req flashcardReq) input() models.FlashcardInput {
	return models.FlashcardInput{Question: req.Question, Answer: req.Answer, Category: req.Category, Topic: req.Topic}
}

// categoryParam reads ?category=; absent or "all" selects every category.
// Anything else is matched exactly.
func categoryParam(r *http.Request) string {
	c := strings.TrimSpace(r.URL.Query().Get("category"))
	if c == "" || c == models.CategoryAll {
		return models.CategoryAll
	}
	return c
}

func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.core.Flashcards.List(r.Context(), categoryParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(cards))
}

func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req flashcardReq
	if !decode(w, r, &req) {
		return
	}
	c, err := h.core.Flashcards.Create(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	c, err := h.core.Flashcards.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req flashcardReq
	if !decode(w, r, &req) {
		return
	}
	c, err := h.core.Flashcards.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := h.core.Flashcards.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// generateReq selects one generation path: topic (quick for the short
// legacy prompt), an s3:// document URI, or raw document text.
type generateReq struct {
	Topic    string `json:"topic"`
	Quick    bool   `json:"quick"`
	Document string `json:"document"`
	Text     string `json:"text"`
}

func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decode(w, r, &req) {
		return
	}

	ctx := r.Context()
	var (
		cards []models.Flashcard
		err   error
	)
	switch {
	case req.Document != "":
		if !strings.HasPrefix(req.Document, "s3://") {
			h.fail(w, r, common.NewValidationError("document", "only s3:// documents are accepted over the API"))
			return
		}
		doc, lerr := h.core.Documents.Load(ctx, req.Document)
		if lerr != nil {
			h.fail(w, r, lerr)
			return
		}
		cards, err = h.core.Generator.FromDocument(ctx, doc.Text)
	case req.Text != "":
		cards, err = h.core.Generator.FromDocument(ctx, req.Text)
	case req.Quick:
		cards, err = h.core.Generator.Quick(ctx, req.Topic)
	default:
		cards, err = h.core.Generator.FromTopic(ctx, req.Topic)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, orEmpty(cards))
}

type studyResp struct {
	Total int                `json:"total"`
	Cards []models.Flashcard `json:"cards"`
}

// Study returns the snapshot a study session runs over. Traversal state
// lives in the client.
func (h *Handler) Study(w http.ResponseWriter, r *http.Request) {
	cards, err := h.core.Flashcards.List(r.Context(), categoryParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := views.NewSession(cards)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, studyResp{Total: s.Len(), Cards: cards})
}
