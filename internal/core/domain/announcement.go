package domain

import "time"

// Announcement is a broadcast message shown to every visitor. At most one
// announcement is active at any time; publishing a new one deactivates all
// previous ones in the same transaction. There is no delete operation;
// superseding is the only terminal transition.
type Announcement struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
