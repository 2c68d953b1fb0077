package entity

import "time"

// Archival task status
const (
	TaskPending = "pending"
	TaskDone    = "done"
	TaskSkipped = "skipped"
)

// ArchivalTask is a durable record of a scheduled booking archival. Tasks
// are rows in PostgreSQL so that armed archivals survive process restarts;
// the sweep picks up any due pending row, however old.
type ArchivalTask struct {
	ID        uint
	BookingID string
	DueAt     time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
