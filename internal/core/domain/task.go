package domain

import "time"

type TaskStatus string

const (
	TaskStatusOpen   TaskStatus = "open"
	TaskStatusClosed TaskStatus = "closed"
)

type InventoryTask struct {
	ID        string
	Name      string
	Status    TaskStatus
	CreatedAt time.Time
}

// TaskCount is the only artifact that survives a scan session: the
// number of valid tags counted for one (task, asset) pair.
type TaskCount struct {
	TaskID         string
	AssetID        string
	ConfirmedCount int
	ExpectedCount  int
	CountedAt      time.Time
}
