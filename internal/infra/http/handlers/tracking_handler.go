package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/middleware"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

const (
	// liveWindow is how recently a visitor must have pinged to count as live.
	liveWindow = 2 * time.Minute
	// purgeAfter is when a stale row gets deleted. The purge runs as a side
	// effect of the live query, so rows between the two windows linger until
	// the next poll. Accepted, not a bug: it saves a scheduler.
	purgeAfter = 5 * time.Minute
)

type TrackingHandler struct {
	PageViews entity.PageViewRepository
	Visitors  entity.LiveVisitorRepository
	Geo       usecase.GeoLocator
	Analytics *usecase.AnalyticsUseCase
}

func NewTrackingHandler(pageViews entity.PageViewRepository, visitors entity.LiveVisitorRepository, geo usecase.GeoLocator, analytics *usecase.AnalyticsUseCase) *TrackingHandler {
	return &TrackingHandler{
		PageViews: pageViews,
		Visitors:  visitors,
		Geo:       geo,
		Analytics: analytics,
	}
}

type trackRequest struct {
	VisitorID   string `json:"visitorId"`
	Page        string `json:"page"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
	Referrer    string `json:"referrer"`
	UserAgent   string `json:"userAgent"`
}

// HandleTrack records one page view. No dedup, reloads count again.
func (h *TrackingHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	view := &entity.PageView{
		VisitorID:   req.VisitorID,
		Page:        req.Page,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		Referrer:    req.Referrer,
		UserAgent:   req.UserAgent,
	}

	if err := h.PageViews.Insert(r.Context(), view); err != nil {
		log.Printf("track failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to track")
		return
	}

	respond(w, http.StatusOK, map[string]any{"success": true})
}

type heartbeatRequest struct {
	VisitorID string `json:"visitorId"`
	Page      string `json:"page"`
	UTMSource string `json:"utmSource"`
}

// HandleHeartbeat refreshes the caller's presence row, geolocating the IP on
// a best-effort basis. Failed lookups leave the location fields empty.
func (h *TrackingHandler) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req heartbeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ip := getClientIP(r)
	v := &entity.LiveVisitor{
		VisitorID: req.VisitorID,
		Page:      req.Page,
		UTMSource: req.UTMSource,
		IPAddress: ip,
	}

	if loc, err := h.Geo.Lookup(r.Context(), ip); err != nil {
		log.Printf("geo lookup failed for %s: %v", ip, err)
		middleware.RecordIntegrationError("geoip")
	} else if loc != nil {
		v.City = loc.City
		v.Region = loc.Region
		v.Country = loc.Country
		lat, lon := loc.Lat, loc.Lon
		v.Lat = &lat
		v.Lon = &lon
	}

	if err := h.Visitors.Upsert(r.Context(), v); err != nil {
		log.Printf("heartbeat failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to record heartbeat")
		return
	}

	middleware.RecordHeartbeat()
	respond(w, http.StatusOK, map[string]any{"success": true})
}

// HandleLiveVisitors returns everyone seen inside the live window, then
// purges rows past the retention cutoff. Cleanup cadence is whatever the
// dashboard's polling happens to be.
func (h *TrackingHandler) HandleLiveVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.Visitors.FindSeenSince(r.Context(), time.Now().Add(-liveWindow))
	if err != nil {
		log.Printf("live visitors query failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch live visitors")
		return
	}

	if err := h.Visitors.PurgeSeenBefore(r.Context(), time.Now().Add(-purgeAfter)); err != nil {
		log.Printf("live visitor purge failed: %v", err)
	}

	if visitors == nil {
		visitors = []entity.LiveVisitor{}
	}
	respond(w, http.StatusOK, map[string]any{"visitors": visitors})
}

func (h *TrackingHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.Analytics.Execute(r.Context())
	if err != nil {
		respondUseCaseError(w, err, "Failed to fetch analytics")
		return
	}

	respond(w, http.StatusOK, report)
}
