package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

const logoBucket = "logos"

type CreateLeadInput struct {
	FirstName    string
	BusinessName string
	Location     string
	Email        string
	Phone        string
	Extras       string
	Trade        string
	UTMSource    string
	UTMMedium    string
	UTMCampaign  string

	// Optional logo upload. Logo == nil means none was attached.
	Logo            io.Reader
	LogoFilename    string
	LogoContentType string
}

type CreateLeadUseCase struct {
	Leads   entity.LeadRepository
	Storage ObjectStore
	Mailer  Mailer
}

func NewCreateLeadUseCase(leads entity.LeadRepository, storage ObjectStore, mailer Mailer) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads:   leads,
		Storage: storage,
		Mailer:  mailer,
	}
}

// Execute creates exactly one lead with status "new". A failed logo upload is
// logged and the lead saved without the reference; failed notifications are
// logged and swallowed. Only the insert itself can fail the call.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		msgs := make([]string, len(validationErrors))
		for i, e := range validationErrors {
			msgs[i] = e.Error()
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed: " + strings.Join(msgs, ", "),
		}
	}

	trade := input.Trade
	if _, ok := entity.TradeBySlug(trade); !ok {
		trade = entity.DefaultTradeSlug
	}

	lead := &entity.Lead{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		BusinessName: input.BusinessName,
		Location:     input.Location,
		Email:        input.Email,
		Phone:        input.Phone,
		Extras:       input.Extras,
		Trade:        trade,
		Status:       entity.StatusNew,
		UTMSource:    input.UTMSource,
		UTMMedium:    input.UTMMedium,
		UTMCampaign:  input.UTMCampaign,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if input.Logo != nil {
		name := logoObjectName(input.BusinessName, input.LogoFilename)
		logoURL, err := uc.Storage.Upload(ctx, logoBucket, name, input.LogoContentType, input.Logo)
		if err != nil {
			// The lead is still worth saving without its logo.
			log.Printf("logo upload failed for %s: %v", input.BusinessName, err)
		} else {
			lead.LogoURL = logoURL
		}
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to save submission: " + err.Error(),
		}
	}

	if err := uc.Mailer.SendAdminAlert(lead); err != nil {
		log.Printf("admin alert failed for lead %s: %v", lead.ID, err)
	}
	if err := uc.Mailer.SendCustomerConfirmation(lead); err != nil {
		log.Printf("customer confirmation failed for lead %s: %v", lead.ID, err)
	}

	return lead, nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// logoObjectName builds a collision-resistant object name from the upload
// time and a slugified business name.
func logoObjectName(businessName, filename string) string {
	slug := strings.ToLower(strings.Trim(nonAlphanumeric.ReplaceAllString(businessName, "-"), "-"))
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), slug, ext)
}
