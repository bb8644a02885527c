package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/handlers"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

func newMockupHandler(repo *MockLeadRepository, store *MockObjectStore, mailer *MockMailer) *handlers.MockupHandler {
	deliver := usecase.NewDeliverMockupUseCase(repo, store, mailer)
	view := usecase.NewViewMockupUseCase(repo)
	interest := usecase.NewRecordInterestUseCase(repo, mailer)
	return handlers.NewMockupHandler(deliver, view, interest)
}

func uploadRequest(t *testing.T, submissionID, field string, filenames ...string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("submissionId", submissionID))
	for _, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-mockup", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func viewRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/mockup/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleUploadMultipleFiles(t *testing.T) {
	repo := new(MockLeadRepository)
	store := new(MockObjectStore)
	mailer := new(MockMailer)

	store.On("Upload", mock.Anything, "mockups", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/mockups/x.png", nil)
	repo.On("SetMockups", mock.Anything, "lead-1", mock.AnythingOfType("[]string"), mock.AnythingOfType("time.Time")).
		Return(&entity.Lead{ID: "lead-1", Status: entity.StatusMockupSent}, nil)
	mailer.On("SendMockupReady", mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	newMockupHandler(repo, store, mailer).HandleUpload(rec, uploadRequest(t, "lead-1", "mockups", "a.png", "b.png"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool        `json:"success"`
		Submission entity.Lead `json:"submission"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, entity.StatusMockupSent, resp.Submission.Status)
	store.AssertNumberOfCalls(t, "Upload", 2)
}

func TestHandleUploadLegacySingleField(t *testing.T) {
	repo := new(MockLeadRepository)
	store := new(MockObjectStore)
	mailer := new(MockMailer)

	store.On("Upload", mock.Anything, "mockups", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/mockups/x.png", nil)
	repo.On("SetMockups", mock.Anything, "lead-1", mock.Anything, mock.Anything).
		Return(&entity.Lead{ID: "lead-1", Status: entity.StatusMockupSent}, nil)
	mailer.On("SendMockupReady", mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	newMockupHandler(repo, store, mailer).HandleUpload(rec, uploadRequest(t, "lead-1", "mockup", "a.png"))

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertNumberOfCalls(t, "Upload", 1)
}

func TestHandleUploadNoFile(t *testing.T) {
	rec := httptest.NewRecorder()
	newMockupHandler(new(MockLeadRepository), new(MockObjectStore), new(MockMailer)).
		HandleUpload(rec, uploadRequest(t, "lead-1", "mockups"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No mockup file provided")
}

func TestHandleUploadStorageFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	store := new(MockObjectStore)

	store.On("Upload", mock.Anything, "mockups", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	rec := httptest.NewRecorder()
	newMockupHandler(repo, store, new(MockMailer)).HandleUpload(rec, uploadRequest(t, "lead-1", "mockups", "a.png"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	repo.AssertNotCalled(t, "SetMockups")
}

func TestHandleViewFirstVisit(t *testing.T) {
	repo := new(MockLeadRepository)
	lead := &entity.Lead{
		ID:           "lead-1",
		FirstName:    "Dave",
		BusinessName: "Dave's Plumbing",
		Trade:        "plumber",
		MockupURLs:   []string{"https://cdn.example.com/mockups/a.png"},
	}
	viewed := *lead
	now := time.Now()
	viewed.ViewedAt = &now

	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	repo.On("MarkViewed", mock.Anything, "lead-1").Return(&viewed, nil)

	rec := httptest.NewRecorder()
	newMockupHandler(repo, new(MockObjectStore), new(MockMailer)).HandleView(rec, viewRequest("lead-1"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID           string   `json:"id"`
		FirstName    string   `json:"first_name"`
		BusinessName string   `json:"business_name"`
		Mockups      []string `json:"mockups"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "lead-1", resp.ID)
	assert.Equal(t, "Dave", resp.FirstName)
	assert.Len(t, resp.Mockups, 1)
	repo.AssertExpectations(t)
}

func TestHandleViewUnknownLead(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrLeadNotFound)

	rec := httptest.NewRecorder()
	newMockupHandler(repo, new(MockObjectStore), new(MockMailer)).HandleView(rec, viewRequest("nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Submission not found")
}

func TestHandleViewNoMockupYet(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").
		Return(&entity.Lead{ID: "lead-1", FirstName: "Dave"}, nil)

	rec := httptest.NewRecorder()
	newMockupHandler(repo, new(MockObjectStore), new(MockMailer)).HandleView(rec, viewRequest("lead-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInterestYes(t *testing.T) {
	repo := new(MockLeadRepository)
	mailer := new(MockMailer)

	repo.On("FindByID", mock.Anything, "lead-1").
		Return(&entity.Lead{ID: "lead-1", Email: "d@example.com", Status: entity.StatusMockupSent}, nil)
	repo.On("SetInterest", mock.Anything, "lead-1", true, entity.StatusConverted).Return(nil)
	mailer.On("SendInterestResponse", mock.Anything, true).Return(nil)

	body := `{"submissionId":"lead-1","interested":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newMockupHandler(repo, new(MockObjectStore), mailer).HandleInterest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestHandleInterestMissingID(t *testing.T) {
	body := `{"interested":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newMockupHandler(new(MockLeadRepository), new(MockObjectStore), new(MockMailer)).HandleInterest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing submission ID")
}

func TestHandleInterestUnknownLead(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrLeadNotFound)

	body := `{"submissionId":"nope","interested":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newMockupHandler(repo, new(MockObjectStore), new(MockMailer)).HandleInterest(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
