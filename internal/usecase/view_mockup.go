package usecase

import (
	"context"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

type ViewMockupUseCase struct {
	Leads entity.LeadRepository
}

func NewViewMockupUseCase(leads entity.LeadRepository) *ViewMockupUseCase {
	return &ViewMockupUseCase{Leads: leads}
}

// Execute fetches the lead for its viewing page. A lead without a delivered
// mockup reads as not found. The first successful view stamps viewed_at;
// later views leave it alone.
func (uc *ViewMockupUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lead.HasMockup() {
		return nil, entity.ErrLeadNotFound
	}

	if lead.ViewedAt == nil {
		return uc.Leads.MarkViewed(ctx, id)
	}
	return lead, nil
}
