package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/services"
)

type errorBody struct {
	Error    string                 `json:"error"`
	Provider *services.ProviderInfo `json:"provider,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return false
	}
	return true
}

// statusOf maps a service error onto an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrMissingCredential):
		return http.StatusPreconditionRequired
	case errors.Is(err, common.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := errorBody{Error: err.Error()}

	var mc *common.MissingCredentialError
	if errors.As(err, &mc) {
		if info, derr := h.core.Credentials.Describe(mc.Provider); derr == nil {
			body.Provider = &info
		}
	}

	if status >= http.StatusInternalServerError {
		h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err)
		if status == http.StatusInternalServerError {
			body.Error = "server error"
		}
	}
	writeJSON(w, status, body)
}

// orEmpty keeps empty collections encoded as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
