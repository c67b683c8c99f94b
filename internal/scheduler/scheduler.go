package scheduler

import (
	"time"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// Notifier receives task-created events. Implementations must not block the
// scheduler; failures are the notifier's problem to log.
type Notifier interface {
	TaskCreated(task models.MaintenanceTask)
}

// Service computes maintenance due dates and creates PPM and corrective
// tasks against the store. It is the single source of truth for task
// generation: the HTTP automation endpoint and the cron trigger both call it.
type Service struct {
	assets     db.AssetCollection
	plantRooms db.PlantRoomCollection
	tasks      db.TaskCollection
	users      db.UserCollection
	notifier   Notifier
	now        func() time.Time
}

// NewService creates a scheduler service. notifier may be nil.
func NewService(assets db.AssetCollection, plantRooms db.PlantRoomCollection, tasks db.TaskCollection, users db.UserCollection, notifier Notifier) *Service {
	return &Service{
		assets:     assets,
		plantRooms: plantRooms,
		tasks:      tasks,
		users:      users,
		notifier:   notifier,
		now:        time.Now,
	}
}

// dateOnly truncates a time to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns a - b in whole calendar days.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(a).Sub(dateOnly(b)).Hours() / 24)
}

func (s *Service) notifyCreated(task models.MaintenanceTask) {
	if s.notifier != nil {
		s.notifier.TaskCreated(task)
	}
}
