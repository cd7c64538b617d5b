package httpapi

import "net/http"

type chatReq struct {
	Message string `json:"message"`
}

func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.core.Chat.History(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(msgs))
}

// SendChat returns the stored assistant reply. On failure nothing but the
// user turn (if any) is stored; the front end shows its own fallback text.
func (h *Handler) SendChat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if !decode(w, r, &req) {
		return
	}
	reply, err := h.core.Chat.Send(r.Context(), req.Message)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) SearchVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.core.Videos.Search(r.Context(), r.URL.Query().Get("topic"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(videos))
}
