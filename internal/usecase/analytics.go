package usecase

import (
	"context"
	"math"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

const directSourceLabel = "Direct / Organic"

type AnalyticsReport struct {
	TotalViews       int            `json:"totalViews"`
	UniqueVisitors   int            `json:"uniqueVisitors"`
	TotalSubmissions int            `json:"totalSubmissions"`
	ConversionRate   float64        `json:"conversionRate"`
	ViewsBySource    map[string]int `json:"viewsBySource"`
	ViewsByCampaign  map[string]int `json:"viewsByCampaign"`
	ViewsByDay       map[string]int `json:"viewsByDay"`
	SubmissionsByDay map[string]int `json:"submissionsByDay"`
}

type AnalyticsUseCase struct {
	PageViews entity.PageViewRepository
	Leads     entity.LeadRepository
}

func NewAnalyticsUseCase(pageViews entity.PageViewRepository, leads entity.LeadRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{PageViews: pageViews, Leads: leads}
}

// Execute aggregates the last 30 days of traffic and submissions for the
// dashboard: totals, per-source and per-campaign view counts, and zero-filled
// daily series over the last 7 calendar days.
func (uc *AnalyticsUseCase) Execute(ctx context.Context) (*AnalyticsReport, error) {
	now := time.Now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	views, err := uc.PageViews.FindCreatedSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to fetch page views: " + err.Error()}
	}

	leads, err := uc.Leads.FindCreatedSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to fetch submissions: " + err.Error()}
	}

	report := &AnalyticsReport{
		TotalViews:       len(views),
		TotalSubmissions: len(leads),
		ViewsBySource:    map[string]int{},
		ViewsByCampaign:  map[string]int{},
		ViewsByDay:       emptyDailySeries(now),
		SubmissionsByDay: emptyDailySeries(now),
	}

	visitors := map[string]bool{}
	for _, v := range views {
		visitors[v.VisitorID] = true

		source := v.UTMSource
		if source == "" {
			source = directSourceLabel
		}
		report.ViewsBySource[source]++

		if v.UTMCampaign != "" {
			report.ViewsByCampaign[v.UTMCampaign]++
		}

		day := v.CreatedAt.Format("2006-01-02")
		if _, ok := report.ViewsByDay[day]; ok {
			report.ViewsByDay[day]++
		}
	}
	report.UniqueVisitors = len(visitors)

	for _, l := range leads {
		day := l.CreatedAt.Format("2006-01-02")
		if _, ok := report.SubmissionsByDay[day]; ok {
			report.SubmissionsByDay[day]++
		}
	}

	if report.TotalViews > 0 {
		rate := float64(report.TotalSubmissions) / float64(report.TotalViews) * 100
		report.ConversionRate = math.Round(rate*10) / 10
	}

	return report, nil
}

// emptyDailySeries pre-seeds the last 7 calendar days so quiet days still
// chart as zero.
func emptyDailySeries(now time.Time) map[string]int {
	series := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		series[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	return series
}
