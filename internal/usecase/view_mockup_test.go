package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

func TestViewMockupFirstViewStampsTimestamp(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	unviewed := &entity.Lead{
		ID:         "lead-1",
		Status:     entity.StatusMockupSent,
		MockupURLs: []string{"https://cdn.example.com/mockups/a.png"},
	}
	viewedAt := time.Now()
	viewed := &entity.Lead{
		ID:         "lead-1",
		Status:     entity.StatusMockupSent,
		MockupURLs: []string{"https://cdn.example.com/mockups/a.png"},
		ViewedAt:   &viewedAt,
	}

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(unviewed, nil)
	leadRepo.On("MarkViewed", mock.Anything, "lead-1").Return(viewed, nil)

	uc := usecase.NewViewMockupUseCase(leadRepo)
	lead, err := uc.Execute(context.Background(), "lead-1")

	assert.NoError(t, err)
	assert.NotNil(t, lead.ViewedAt)
	leadRepo.AssertCalled(t, "MarkViewed", mock.Anything, "lead-1")
}

func TestViewMockupSecondViewLeavesTimestamp(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	firstView := time.Now().Add(-time.Hour)
	lead := &entity.Lead{
		ID:         "lead-1",
		Status:     entity.StatusMockupSent,
		MockupURLs: []string{"https://cdn.example.com/mockups/a.png"},
		ViewedAt:   &firstView,
	}
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)

	uc := usecase.NewViewMockupUseCase(leadRepo)
	got, err := uc.Execute(context.Background(), "lead-1")

	assert.NoError(t, err)
	assert.Equal(t, firstView, *got.ViewedAt)
	leadRepo.AssertNotCalled(t, "MarkViewed", mock.Anything, mock.Anything)
}

func TestViewMockupNoMockupReadsAsNotFound(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	leadRepo.On("FindByID", mock.Anything, "lead-1").
		Return(&entity.Lead{ID: "lead-1", Status: entity.StatusNew}, nil)

	uc := usecase.NewViewMockupUseCase(leadRepo)
	_, err := uc.Execute(context.Background(), "lead-1")

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestViewMockupUnknownLead(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewViewMockupUseCase(leadRepo)
	_, err := uc.Execute(context.Background(), "ghost")

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestViewMockupLegacySingularField(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	viewedAt := time.Now()
	lead := &entity.Lead{
		ID:        "lead-1",
		Status:    entity.StatusMockupSent,
		MockupURL: "https://cdn.example.com/mockups/old.png",
		ViewedAt:  &viewedAt,
	}
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)

	uc := usecase.NewViewMockupUseCase(leadRepo)
	got, err := uc.Execute(context.Background(), "lead-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/mockups/old.png"}, got.AllMockups())
}
