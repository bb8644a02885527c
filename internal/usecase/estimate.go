package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Monthly search-volume tiers, picked by substring match against the
// location. UK population bands; anything unmatched counts as a small town.
var (
	majorCities = []string{"london", "birmingham", "manchester", "leeds", "glasgow", "liverpool", "newcastle", "sheffield", "bristol", "edinburgh"}
	largeTowns  = []string{"cardiff", "belfast", "nottingham", "leicester", "coventry", "bradford", "stoke", "wolverhampton", "plymouth", "southampton", "reading", "derby", "brighton", "hull"}
	mediumTowns = []string{"swansea", "milton keynes", "northampton", "norwich", "luton", "preston", "aberdeen", "blackpool", "bournemouth", "middlesbrough", "bolton", "ipswich", "oxford", "cambridge", "york", "gloucester", "exeter", "chester", "bath", "worcester", "lincoln", "newport", "hereford", "monmouth"}
)

type SearchTier struct {
	Min   int
	Max   int
	Label string
}

func SearchTierFor(location string) SearchTier {
	loc := strings.ToLower(location)

	matches := func(names []string) bool {
		for _, name := range names {
			if strings.Contains(loc, name) {
				return true
			}
		}
		return false
	}

	switch {
	case matches(majorCities):
		return SearchTier{Min: 2000, Max: 4000, Label: "high"}
	case matches(largeTowns):
		return SearchTier{Min: 800, Max: 1500, Label: "medium-high"}
	case matches(mediumTowns):
		return SearchTier{Min: 400, Max: 800, Label: "medium"}
	default:
		return SearchTier{Min: 150, Max: 400, Label: "local"}
	}
}

// SampleSearchVolume draws uniformly within the tier's range.
func SampleSearchVolume(tier SearchTier) int {
	return rand.Intn(tier.Max-tier.Min) + tier.Min
}

// EstimateMonthlyLeads applies the static multiplier tables: map-pack
// position share, review-count trust, rating quality, then the ~12%
// click-to-enquiry rate.
func EstimateMonthlyLeads(searchVolume int, rating float64, reviewCount, position int) int {
	positionMult := 0.15
	switch position {
	case 1:
		positionMult = 0.35
	case 2:
		positionMult = 0.20
	}

	reviewMult := 0.8
	switch {
	case reviewCount > 100:
		reviewMult = 1.3
	case reviewCount > 50:
		reviewMult = 1.15
	case reviewCount > 20:
		reviewMult = 1.0
	}

	ratingMult := 0.85
	switch {
	case rating >= 4.8:
		ratingMult = 1.2
	case rating >= 4.5:
		ratingMult = 1.1
	case rating >= 4.0:
		ratingMult = 1.0
	}

	adjusted := float64(searchVolume) * positionMult * reviewMult * ratingMult
	return int(adjusted * 0.12)
}

type EstimateInput struct {
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
	Trade        string `json:"trade"`
}

type BusinessSummary struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	PlaceID     string  `json:"placeId"`
}

type GbpSearchOutput struct {
	Found          bool             `json:"found"`
	Business       *BusinessSummary `json:"business,omitempty"`
	SearchVolume   int              `json:"searchVolume"`
	EstimatedLeads int              `json:"estimatedLeads"`
	Location       string           `json:"location"`
}

type SpyStats struct {
	SearchVolume          int `json:"searchVolume"`
	EstimatedLeads        int `json:"estimatedLeads"`
	EstimatedRevenue      int `json:"estimatedRevenue"`
	EstimatedCallsPerWeek int `json:"estimatedCallsPerWeek"`
}

type SpySearchOutput struct {
	Found    bool             `json:"found"`
	Business *BusinessSummary `json:"business,omitempty"`
	Stats    *SpyStats        `json:"stats,omitempty"`
	Insights []string         `json:"insights,omitempty"`
	Message  string           `json:"message,omitempty"`
	Location string           `json:"location"`
}

// averageJobValue is a conservative per-job figure used for the revenue line.
const averageJobValue = 250

type EstimateUseCase struct {
	Places PlaceFinder
}

func NewEstimateUseCase(placeFinder PlaceFinder) *EstimateUseCase {
	return &EstimateUseCase{Places: placeFinder}
}

// GbpSearch checks whether the business has a findable listing and attaches a
// sampled search volume either way. The volume is synthetic: fixed bounds per
// location tier, drawn fresh on every call.
func (uc *EstimateUseCase) GbpSearch(ctx context.Context, input EstimateInput) (*GbpSearchOutput, error) {
	if err := validateEstimateInput(input); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s %s", input.BusinessName, input.Trade, input.Location)
	place, err := uc.Places.FindPlace(ctx, query)
	if err != nil {
		return nil, &TechnicalError{Code: "PLACES_ERROR", Message: "places lookup failed: " + err.Error()}
	}

	searchVolume := SampleSearchVolume(SearchTierFor(input.Location))
	out := &GbpSearchOutput{
		SearchVolume:   searchVolume,
		EstimatedLeads: int(float64(searchVolume) * 0.15),
		Location:       input.Location,
	}

	// A candidate only counts when its name echoes the first word of what
	// the visitor typed; find-place happily returns loose matches.
	if place != nil && nameMatches(place.Name, input.BusinessName) {
		out.Found = true
		out.Business = &BusinessSummary{
			Name:        place.Name,
			Address:     place.Address,
			Rating:      place.Rating,
			ReviewCount: place.ReviewCount,
			PlaceID:     place.PlaceID,
		}
	}

	return out, nil
}

// SpySearch estimates what an established competitor's listing earns them:
// leads via the multiplier tables, revenue at a flat per-job value.
func (uc *EstimateUseCase) SpySearch(ctx context.Context, input EstimateInput) (*SpySearchOutput, error) {
	if err := validateEstimateInput(input); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s", input.BusinessName, input.Location)
	place, err := uc.Places.FindPlace(ctx, query)
	if err != nil {
		return nil, &TechnicalError{Code: "PLACES_ERROR", Message: "places lookup failed: " + err.Error()}
	}

	if place == nil {
		return &SpySearchOutput{
			Found:    false,
			Message:  "Couldn't find that business. Check the spelling or try a different name.",
			Location: input.Location,
		}, nil
	}

	searchVolume := SampleSearchVolume(SearchTierFor(input.Location))
	estimatedLeads := EstimateMonthlyLeads(searchVolume, place.Rating, place.ReviewCount, 1)

	return &SpySearchOutput{
		Found: true,
		Business: &BusinessSummary{
			Name:        place.Name,
			Address:     place.Address,
			Rating:      place.Rating,
			ReviewCount: place.ReviewCount,
			PlaceID:     place.PlaceID,
		},
		Stats: &SpyStats{
			SearchVolume:          searchVolume,
			EstimatedLeads:        estimatedLeads,
			EstimatedRevenue:      estimatedLeads * averageJobValue,
			EstimatedCallsPerWeek: int(math.Ceil(float64(estimatedLeads) / 4)),
		},
		Insights: spyInsights(place.Rating, place.ReviewCount),
		Location: input.Location,
	}, nil
}

func validateEstimateInput(input EstimateInput) error {
	if strings.TrimSpace(input.BusinessName) == "" || strings.TrimSpace(input.Location) == "" {
		return &DomainError{Code: "MISSING_FIELDS", Message: "businessName and location are required"}
	}
	return nil
}

func nameMatches(candidateName, businessName string) bool {
	firstWord := strings.ToLower(strings.Fields(businessName)[0])
	return strings.Contains(strings.ToLower(candidateName), firstWord)
}

func spyInsights(rating float64, reviewCount int) []string {
	var insights []string

	switch {
	case reviewCount > 50:
		insights = append(insights, fmt.Sprintf("%d reviews builds serious trust", reviewCount))
	case reviewCount > 20:
		insights = append(insights, fmt.Sprintf("%d reviews - decent but beatable", reviewCount))
	default:
		insights = append(insights, fmt.Sprintf("Only %d reviews - vulnerability here", reviewCount))
	}

	switch {
	case rating >= 4.8:
		insights = append(insights, fmt.Sprintf("%.1f star rating - excellent reputation", rating))
	case rating >= 4.5:
		insights = append(insights, fmt.Sprintf("%.1f star rating - strong but not perfect", rating))
	default:
		insights = append(insights, fmt.Sprintf("%.1f star rating - room for you to beat them", rating))
	}

	insights = append(insights,
		"Likely has optimised business description",
		"Probably posts regular updates",
	)
	return insights
}
