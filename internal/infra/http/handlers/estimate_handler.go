package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

type EstimateHandler struct {
	Estimates   *usecase.EstimateUseCase
	rateLimiter *RateLimiter
}

func NewEstimateHandler(estimates *usecase.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{
		Estimates:   estimates,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *EstimateHandler) HandleGbpSearch(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEstimateRequest(w, r)
	if !ok {
		return
	}

	output, err := h.Estimates.GbpSearch(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, output)
}

func (h *EstimateHandler) HandleSpySearch(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEstimateRequest(w, r)
	if !ok {
		return
	}

	output, err := h.Estimates.SpySearch(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, output)
}

// HandleSpyStatus is the GET probe the landing page hits before showing the
// tool.
func (h *EstimateHandler) HandleSpyStatus(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Spy search API is running. Use POST to search.",
	})
}

func (h *EstimateHandler) decodeEstimateRequest(w http.ResponseWriter, r *http.Request) (usecase.EstimateInput, bool) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return usecase.EstimateInput{}, false
	}

	var input usecase.EstimateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return usecase.EstimateInput{}, false
	}
	return input, true
}
