package scheduler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// OverdueTasks returns every task not yet completed whose due date is
// strictly before today, with asset name, plant room block and assignee
// email joined in for display. Unlike an empty result, a query failure is
// returned as an error so callers can tell the two apart. Failures joining
// display fields for an individual task leave those fields empty.
func (s *Service) OverdueTasks(ctx context.Context) ([]models.OverdueTask, error) {
	today := s.now()
	tasks, err := s.tasks.FindIncompleteDueBefore(ctx, dateOnly(today))
	if err != nil {
		return nil, fmt.Errorf("fetch overdue tasks: %w", err)
	}

	overdue := make([]models.OverdueTask, 0, len(tasks))
	for _, task := range tasks {
		row := models.OverdueTask{
			Task:        task,
			DaysPastDue: daysBetween(today, task.DueDate),
		}
		if task.AssetID != "" {
			if asset, err := s.assets.FindAssetByID(ctx, task.AssetID); err == nil {
				row.AssetName = asset.Name
			} else {
				log.WithError(err).WithField("asset", task.AssetID).Warn("Failed to resolve asset for overdue task")
			}
		}
		if room, err := s.plantRooms.FindPlantRoomByID(ctx, task.PlantRoomID.Hex()); err == nil {
			row.PlantRoomBlock = room.Block
		}
		if task.AssigneeID != "" {
			if user, err := s.users.FindUserByID(ctx, task.AssigneeID); err == nil {
				row.AssigneeEmail = user.Email
			}
		}
		overdue = append(overdue, row)
	}
	return overdue, nil
}
