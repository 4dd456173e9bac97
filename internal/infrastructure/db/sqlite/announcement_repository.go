package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

const announcementColumns = "id, message, isActive, createdAt"

// AnnouncementRepository persists the singleton announcement.
type AnnouncementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) GetActive(ctx context.Context) (*domain.Announcement, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+announcementColumns+" FROM announcements WHERE isActive = 1 ORDER BY createdAt DESC, id DESC LIMIT 1")
	ann, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return ann, nil
}

// Publish deactivates all announcements and inserts the new one inside a
// single transaction. Combined with the single-connection pool this
// guarantees a reader never observes two active announcements.
func (r *AnnouncementRepository) Publish(ctx context.Context, message string, isActive bool) (*domain.Announcement, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("publish announcement: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "UPDATE announcements SET isActive = 0"); err != nil {
		return nil, fmt.Errorf("publish announcement: deactivate: %w", err)
	}

	createdAt := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO announcements (message, isActive, createdAt) VALUES (?, ?, ?)",
		message, boolToInt(isActive), createdAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("publish announcement: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("publish announcement: %w", err)
	}

	row := tx.QueryRowContext(ctx, "SELECT "+announcementColumns+" FROM announcements WHERE id = ?", id)
	ann, err := scanAnnouncement(row)
	if err != nil {
		return nil, fmt.Errorf("publish announcement: read back: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("publish announcement: commit: %w", err)
	}
	return ann, nil
}

func scanAnnouncement(row rowScanner) (*domain.Announcement, error) {
	var (
		a         domain.Announcement
		isActive  int64
		createdAt int64
	)
	if err := row.Scan(&a.ID, &a.Message, &isActive, &createdAt); err != nil {
		return nil, err
	}
	a.IsActive = isActive != 0
	a.CreatedAt = millisToTime(createdAt)
	return &a, nil
}
