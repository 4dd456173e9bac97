package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

type announcementService struct {
	announcements ports.AnnouncementRepository
	log           zerolog.Logger
}

// NewAnnouncementService returns the singleton-announcement operations.
func NewAnnouncementService(announcements ports.AnnouncementRepository, log zerolog.Logger) ports.AnnouncementService {
	return &announcementService{announcements: announcements, log: log}
}

// Active returns the current announcement, or nil when nothing is published.
// Absence is a normal state, not an error.
func (s *announcementService) Active(ctx context.Context) (*domain.Announcement, error) {
	ann, err := s.announcements.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ann, nil
}

func (s *announcementService) Publish(ctx context.Context, message string, isActive bool) (*domain.Announcement, error) {
	ann, err := s.announcements.Publish(ctx, message, isActive)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to publish announcement")
		return nil, err
	}

	s.log.Info().Int64("announcement_id", ann.ID).Bool("active", ann.IsActive).Msg("announcement published")
	return ann, nil
}
