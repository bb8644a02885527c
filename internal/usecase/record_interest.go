package usecase

import (
	"context"
	"log"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

type RecordInterestUseCase struct {
	Leads  entity.LeadRepository
	Mailer Mailer
}

func NewRecordInterestUseCase(leads entity.LeadRepository, mailer Mailer) *RecordInterestUseCase {
	return &RecordInterestUseCase{Leads: leads, Mailer: mailer}
}

// Execute records the customer's yes/no answer. A yes converts the lead; a no
// leaves the status where staff put it ("closed" stays an operator decision).
// Both stamp the response timestamp. Staff get a summary email either way.
func (uc *RecordInterestUseCase) Execute(ctx context.Context, id string, interested bool) error {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return err
	}

	status := lead.Status
	if interested {
		status = entity.StatusConverted
	}

	if err := uc.Leads.SetInterest(ctx, id, interested, status); err != nil {
		return err
	}

	lead.Status = status
	lead.Interested = &interested
	if err := uc.Mailer.SendInterestResponse(lead, interested); err != nil {
		log.Printf("interest notification failed for lead %s: %v", lead.ID, err)
	}

	return nil
}
