package courier

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
)

// presentMission strips recipient-only metadata before a mission leaves on
// the courier surface. Every mission body in this package goes through here.
func presentMission(m *domain.Mission) *domain.Mission {
	return m.Redacted()
}

func presentMissions(missions []*domain.Mission) []*domain.Mission {
	out := make([]*domain.Mission, len(missions))
	for i, m := range missions {
		out[i] = m.Redacted()
	}
	return out
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "mission not found"})
	case errors.Is(err, e.ErrAlreadyClaimed):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "mission already claimed"})
	case errors.Is(err, e.ErrNotAvailable), errors.Is(err, e.ErrIllegalTransition), errors.Is(err, e.ErrVersionConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "mission state conflict"})
	case errors.Is(err, e.ErrNotOwner):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "not mission owner"})
	case errors.Is(err, e.ErrCourierNotEligible):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "courier not eligible"})
	case errors.Is(err, e.ErrOtpThrottled):
		h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many verification attempts"})
	case errors.Is(err, e.ErrInvalidOtp):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid delivery code"})
	case errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
