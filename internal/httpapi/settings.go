package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/services"
)

// keyStatus never carries the key itself.
type keyStatus struct {
	services.ProviderInfo
	Configured bool `json:"configured"`
}

func (h *Handler) ListKeys(w http.ResponseWriter, r *http.Request) {
	out := make([]keyStatus, 0, len(models.Providers))
	for _, p := range models.Providers {
		k, err := h.core.Credentials.Get(r.Context(), p)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		info, _ := h.core.Credentials.Describe(p)
		out = append(out, keyStatus{ProviderInfo: info, Configured: k != ""})
	}
	writeJSON(w, http.StatusOK, out)
}

type keyReq struct {
	Key string `json:"key"`
}

func (h *Handler) SetKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if !decode(w, r, &req) {
		return
	}
	provider := strings.ToLower(chi.URLParam(r, "provider"))
	if err := h.core.Credentials.Set(r.Context(), provider, req.Key); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.core.Store.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
