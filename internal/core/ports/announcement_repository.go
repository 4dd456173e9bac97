package ports

import (
	"context"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

// AnnouncementRepository defines the persistence contract for the singleton
// announcement.
type AnnouncementRepository interface {
	// GetActive returns the currently active announcement, or
	// domain.ErrAnnouncementNotFound when none is active.
	GetActive(ctx context.Context) (*domain.Announcement, error)
	// Publish deactivates every existing announcement and inserts the new one
	// in a single transaction. A concurrent reader never observes two active
	// announcements.
	Publish(ctx context.Context, message string, isActive bool) (*domain.Announcement, error)
}
