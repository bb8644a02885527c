package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/middleware"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

// maxSubmitBytes caps the multipart body; logos are small images.
const maxSubmitBytes = 10 << 20

type LeadHandler struct {
	CreateLead *usecase.CreateLeadUseCase
	Leads      entity.LeadRepository
}

func NewLeadHandler(createLead *usecase.CreateLeadUseCase, leads entity.LeadRepository) *LeadHandler {
	return &LeadHandler{CreateLead: createLead, Leads: leads}
}

// HandleSubmit creates one lead per call. No idempotency key: a double-click
// on the landing page makes two rows, triage happens in the dashboard.
func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmitBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	input := usecase.CreateLeadInput{
		FirstName:    r.FormValue("firstName"),
		BusinessName: r.FormValue("businessName"),
		Location:     r.FormValue("location"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		Extras:       r.FormValue("extras"),
		Trade:        r.FormValue("trade"),
		UTMSource:    r.FormValue("utmSource"),
		UTMMedium:    r.FormValue("utmMedium"),
		UTMCampaign:  r.FormValue("utmCampaign"),
	}

	if file, header, err := r.FormFile("logo"); err == nil && header.Size > 0 {
		defer file.Close()
		input.Logo = file
		input.LogoFilename = header.Filename
		input.LogoContentType = header.Header.Get("Content-Type")
	}

	lead, err := h.CreateLead.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err, "Failed to save submission")
		return
	}

	middleware.RecordLeadCreated()
	respond(w, http.StatusOK, map[string]any{"success": true, "id": lead.ID})
}

// HandleList returns every lead, newest first, for the dashboard.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		log.Printf("failed to fetch submissions: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	if leads == nil {
		leads = []entity.Lead{}
	}
	respond(w, http.StatusOK, map[string]any{"submissions": leads})
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// HandleUpdateStatus overwrites a lead's status with any of the six values.
// There is no transition table: staff routinely move leads backwards.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" || !entity.IsValidStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid id or status")
		return
	}

	lead, err := h.Leads.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		log.Printf("failed to update submission %s: %v", req.ID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update")
		return
	}

	respond(w, http.StatusOK, map[string]any{"submission": lead})
}
