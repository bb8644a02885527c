package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/middleware"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

const maxMockupBytes = 50 << 20

type MockupHandler struct {
	Deliver  *usecase.DeliverMockupUseCase
	View     *usecase.ViewMockupUseCase
	Interest *usecase.RecordInterestUseCase
}

func NewMockupHandler(deliver *usecase.DeliverMockupUseCase, view *usecase.ViewMockupUseCase, interest *usecase.RecordInterestUseCase) *MockupHandler {
	return &MockupHandler{Deliver: deliver, View: view, Interest: interest}
}

// HandleUpload accepts one or more images under "mockups"; the single
// "mockup" field from the old dashboard still works.
func (h *MockupHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMockupBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	headers := r.MultipartForm.File["mockups"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["mockup"]
	}
	if len(headers) == 0 {
		respondError(w, http.StatusBadRequest, "No mockup file provided")
		return
	}

	input := usecase.DeliverMockupInput{
		SubmissionID: r.FormValue("submissionId"),
	}

	var open []multipart.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		open = append(open, file)
		input.Files = append(input.Files, usecase.MockupFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		})
	}

	lead, err := h.Deliver.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err, "Failed to upload mockup")
		return
	}

	middleware.RecordMockupDelivered()
	respond(w, http.StatusOK, map[string]any{"success": true, "submission": lead})
}

type viewResponse struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name"`
	BusinessName string   `json:"business_name"`
	Trade        string   `json:"trade"`
	LogoURL      string   `json:"logo_url,omitempty"`
	Mockups      []string `json:"mockups"`
}

// HandleView backs the customer-facing mockup page. The first fetch stamps
// the viewed timestamp; repeat visits do not move it.
func (h *MockupHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.View.Execute(r.Context(), id)
	if err != nil {
		respondUseCaseError(w, err, "Failed to fetch mockup")
		return
	}

	respond(w, http.StatusOK, viewResponse{
		ID:           lead.ID,
		FirstName:    lead.FirstName,
		BusinessName: lead.BusinessName,
		Trade:        lead.Trade,
		LogoURL:      lead.LogoURL,
		Mockups:      lead.AllMockups(),
	})
}

type interestRequest struct {
	SubmissionID string `json:"submissionId"`
	Interested   bool   `json:"interested"`
}

func (h *MockupHandler) HandleInterest(w http.ResponseWriter, r *http.Request) {
	var req interestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SubmissionID == "" {
		respondError(w, http.StatusBadRequest, "Missing submission ID")
		return
	}

	if err := h.Interest.Execute(r.Context(), req.SubmissionID, req.Interested); err != nil {
		respondUseCaseError(w, err, "Failed to update")
		return
	}

	middleware.RecordInterestResponse(req.Interested)
	respond(w, http.StatusOK, map[string]any{"success": true})
}
