package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

const mockupBucket = "mockups"

type MockupFile struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type DeliverMockupInput struct {
	SubmissionID string
	Files        []MockupFile
}

type DeliverMockupUseCase struct {
	Leads   entity.LeadRepository
	Storage ObjectStore
	Mailer  Mailer
}

func NewDeliverMockupUseCase(leads entity.LeadRepository, storage ObjectStore, mailer Mailer) *DeliverMockupUseCase {
	return &DeliverMockupUseCase{
		Leads:   leads,
		Storage: storage,
		Mailer:  mailer,
	}
}

// Execute stores every image, then updates the lead in one write: ordered
// list, legacy singular reference, status mockup_sent, sent timestamp. Any
// storage failure aborts the whole call before the lead is touched. Object
// names are deterministic per lead and ordinal, so a retry or a fresh upload
// overwrites the previous set rather than accumulating.
func (uc *DeliverMockupUseCase) Execute(ctx context.Context, input DeliverMockupInput) (*entity.Lead, error) {
	if input.SubmissionID == "" {
		return nil, &DomainError{Code: "MISSING_ID", Message: "submissionId is required"}
	}
	if len(input.Files) == 0 {
		return nil, &DomainError{Code: "NO_FILES", Message: "no mockup file provided"}
	}

	urls := make([]string, 0, len(input.Files))
	for i, f := range input.Files {
		name := fmt.Sprintf("%s-mockup-%d%s", input.SubmissionID, i+1, filepath.Ext(f.Filename))
		url, err := uc.Storage.Upload(ctx, mockupBucket, name, f.ContentType, f.Data)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "STORAGE_ERROR",
				Message: fmt.Sprintf("failed to upload mockup %d: %s", i+1, err),
			}
		}
		urls = append(urls, url)
	}

	lead, err := uc.Leads.SetMockups(ctx, input.SubmissionID, urls, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.Mailer.SendMockupReady(lead); err != nil {
		log.Printf("mockup-ready email failed for lead %s: %v", lead.ID, err)
	}

	return lead, nil
}
