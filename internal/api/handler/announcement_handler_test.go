package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

type stubAnnouncements struct {
	active *domain.Announcement
	nextID int64
}

func (s *stubAnnouncements) Active(_ context.Context) (*domain.Announcement, error) {
	return s.active, nil
}

func (s *stubAnnouncements) Publish(_ context.Context, message string, isActive bool) (*domain.Announcement, error) {
	s.nextID++
	ann := &domain.Announcement{
		ID:        s.nextID,
		Message:   message,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}
	if isActive {
		s.active = ann
	} else {
		s.active = nil
	}
	return ann, nil
}

func TestAnnouncementHandler_Active_NullWhenUnset(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncements{})
	c, rec := productRequest(t, http.MethodGet, "/api/announcements", "")

	if err := h.Active(c); err != nil {
		t.Fatalf("Active returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %s", rec.Body.String())
	}
}

func TestAnnouncementHandler_Publish(t *testing.T) {
	store := &stubAnnouncements{}
	h := NewAnnouncementHandler(store)

	c, rec := productRequest(t, http.MethodPost, "/api/announcements", `{"message":"maintenance tonight"}`)
	if err := h.Publish(c); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.active == nil || store.active.Message != "maintenance tonight" {
		t.Fatalf("announcement not stored: %+v", store.active)
	}
	// Omitted isActive defaults to true.
	if !store.active.IsActive {
		t.Fatalf("expected active announcement")
	}

	c, rec = productRequest(t, http.MethodGet, "/api/announcements", "")
	if err := h.Active(c); err != nil {
		t.Fatalf("Active returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "maintenance tonight") {
		t.Fatalf("active read missed the published message: %s", rec.Body.String())
	}
}

func TestAnnouncementHandler_Publish_RequiresMessage(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncements{})

	c, _ := productRequest(t, http.MethodPost, "/api/announcements", `{"isActive":true}`)
	err := h.Publish(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing message, got %v", err)
	}
}

func TestAnnouncementHandler_Publish_Inactive(t *testing.T) {
	store := &stubAnnouncements{}
	_, _ = store.Publish(context.Background(), "old", true)
	h := NewAnnouncementHandler(store)

	c, rec := productRequest(t, http.MethodPost, "/api/announcements", `{"message":"draft","isActive":false}`)
	if err := h.Publish(c); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if store.active != nil {
		t.Fatalf("inactive publish must leave no active announcement")
	}
}
