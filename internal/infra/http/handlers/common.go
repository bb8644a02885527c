package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}

// respondUseCaseError maps usecase failures onto the wire: business
// rejections are 400, unknown leads 404, everything else is logged and
// answered with a generic 500 so upstream detail never leaks.
func respondUseCaseError(w http.ResponseWriter, err error, generic string) {
	var domainErr *usecase.DomainError
	switch {
	case errors.As(err, &domainErr):
		respondError(w, http.StatusBadRequest, domainErr.Message)
	case errors.Is(err, entity.ErrLeadNotFound):
		respondError(w, http.StatusNotFound, "Submission not found")
	default:
		log.Printf("%s: %v", generic, err)
		respondError(w, http.StatusInternalServerError, generic)
	}
}

// getClientIP prefers the proxy-set headers the platform puts in front of us.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
