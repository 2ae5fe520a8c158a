package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"detailing_site_backend/internal/events"
	"detailing_site_backend/internal/intake/repository"
	"detailing_site_backend/internal/intake/service"
	"detailing_site_backend/platform/logger"
	"detailing_site_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeRepo struct {
	inquiries int
	bookings  int
	err       error
}

func (r *fakeRepo) InsertInquiry(context.Context, repository.NewInquiry) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.inquiries++
	return uuid.New(), nil
}

func (r *fakeRepo) InsertBooking(context.Context, repository.NewBooking) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.bookings++
	return uuid.New(), nil
}

type noopBus struct{}

func (noopBus) Publish(context.Context, events.Event) {}

func (noopBus) PublishSync(context.Context, events.Event) error { return nil }

func (noopBus) Subscribe(string, events.Handler) {}

func newTestEngine(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	svc := service.New(repo, noopBus{}, logger.New("test"))
	h := New(svc, validator.New())
	engine.POST("/api/v1/inquiry", h.SubmitInquiry)
	engine.POST("/api/v1/booking", h.SubmitBooking)
	return engine
}

func post(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSubmitInquirySuccess(t *testing.T) {
	repo := &fakeRepo{}
	engine := newTestEngine(repo)

	rec := post(engine, "/api/v1/inquiry", `{"email":"carlos@example.com","message":"Need a detail"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false, want true")
	}
	if repo.inquiries != 1 {
		t.Fatalf("persisted %d inquiries, want 1", repo.inquiries)
	}
}

func TestSubmitInquiryBadEmail(t *testing.T) {
	repo := &fakeRepo{}
	engine := newTestEngine(repo)

	rec := post(engine, "/api/v1/inquiry", `{"email":"not-an-email","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if repo.inquiries != 0 {
		t.Fatal("invalid submission was persisted")
	}
}

func TestSubmitInquiryMalformedBody(t *testing.T) {
	engine := newTestEngine(&fakeRepo{})

	rec := post(engine, "/api/v1/inquiry", `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitBookingPersistFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	engine := newTestEngine(repo)

	rec := post(engine, "/api/v1/booking", `{"email":"carlos@example.com","package":"GOLD – SUV ($290)"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// Generic message only; the driver error stays in the logs.
	if got := rec.Body.String(); strings.Contains(got, "connection refused") {
		t.Fatalf("body leaks internal error: %s", got)
	}
}

func TestSubmitBookingHoneypotLooksLikeSuccess(t *testing.T) {
	repo := &fakeRepo{}
	engine := newTestEngine(repo)

	rec := post(engine, "/api/v1/booking", `{"email":"bot@example.com","company":"Bot LLC"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("body = %s, want success response", rec.Body.String())
	}
	if repo.bookings != 0 {
		t.Fatal("honeypot submission was persisted")
	}
}
