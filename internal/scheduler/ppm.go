package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// Overdue thresholds in days. Past the escalation threshold the task is due
// immediately instead of on the computed date; past the high-priority
// threshold it is created as High priority.
const (
	escalateDueDays  = 7
	highPriorityDays = 30
)

// AssetDetail is the per-asset diagnostic record of a generation run.
type AssetDetail struct {
	AssetID        string           `json:"asset_id"`
	AssetName      string           `json:"asset_name"`
	LastService    time.Time        `json:"last_service"`
	Frequency      models.Frequency `json:"frequency"`
	NextDue        time.Time        `json:"next_due"`
	DaysDifference int              `json:"days_difference"`
	NeedsService   bool             `json:"needs_service"`
	Skipped        string           `json:"skipped,omitempty"` // "no_plant_room", "existing_task", "lookup_failed"
}

// GenerateReport is the outcome of one PPM generation run.
type GenerateReport struct {
	RunID              string        `json:"run_id"`
	CreatedCount       int           `json:"created_count"`
	SkippedNoPlantRoom int           `json:"skipped_no_plant_room"`
	Errors             []string      `json:"errors"`
	Details            []AssetDetail `json:"details"`
}

// GenerateAutoPPMTasks walks every operational asset with a recorded
// last-service date, computes its next due date and creates Open PPM tasks
// for assets whose due date has arrived, in a single batch insert. Duplicate
// creation for a due window is prevented by the existing-task check and,
// against concurrent runs, by the store's unique index. A failure fetching
// assets or the plant-room mapping aborts the run; per-asset failures are
// accumulated and the remaining assets still processed.
func (s *Service) GenerateAutoPPMTasks(ctx context.Context, assigneeID string) GenerateReport {
	report := GenerateReport{RunID: uuid.NewString()}
	today := s.now()

	assets, err := s.assets.FindOperationalWithLastService(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("fetch assets: %v", err))
		return report
	}

	refs := make([]string, 0, len(assets))
	seen := map[string]bool{}
	for _, asset := range assets {
		if !seen[asset.PlantRoomRef] {
			seen[asset.PlantRoomRef] = true
			refs = append(refs, asset.PlantRoomRef)
		}
	}
	mapping, err := s.plantRooms.MapRefsToIDs(ctx, refs)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("map plant rooms: %v", err))
		return report
	}

	var batch []models.MaintenanceTask
	for _, asset := range assets {
		if asset.LastServiceDate == nil {
			continue
		}
		next := NextServiceDate(*asset.LastServiceDate, asset.Frequency)
		days := daysBetween(today, next)
		detail := AssetDetail{
			AssetID:        asset.ID.Hex(),
			AssetName:      asset.Name,
			LastService:    *asset.LastServiceDate,
			Frequency:      models.NormalizeFrequency(asset.Frequency),
			NextDue:        next,
			DaysDifference: days,
			NeedsService:   days >= 0,
		}

		if !detail.NeedsService {
			report.Details = append(report.Details, detail)
			continue
		}

		roomID, ok := mapping[asset.PlantRoomRef]
		if !ok {
			detail.Skipped = "no_plant_room"
			report.SkippedNoPlantRoom++
			report.Details = append(report.Details, detail)
			log.WithFields(log.Fields{
				"asset":          asset.ID.Hex(),
				"plant_room_ref": asset.PlantRoomRef,
			}).Warn("Asset has no resolvable plant room, skipping")
			continue
		}

		existing, err := s.tasks.FindExistingPPMTask(ctx, asset.ID.Hex(), next)
		if err != nil {
			// Skip rather than risk a duplicate; the error stays visible.
			detail.Skipped = "lookup_failed"
			report.Details = append(report.Details, detail)
			report.Errors = append(report.Errors, fmt.Sprintf("asset %s: existing-task lookup: %v", asset.ID.Hex(), err))
			continue
		}
		if existing != nil {
			detail.Skipped = "existing_task"
			report.Details = append(report.Details, detail)
			continue
		}

		due := next
		priority := models.TaskPriorityLow
		if days > highPriorityDays {
			priority = models.TaskPriorityHigh
		} else if days > escalateDueDays {
			priority = models.TaskPriorityMedium
		}
		if days > escalateDueDays {
			due = today
		}

		batch = append(batch, models.MaintenanceTask{
			PlantRoomID: roomID,
			AssetID:     asset.ID.Hex(),
			DueDate:     due,
			Type:        models.TaskTypePPM,
			Status:      models.TaskStatusOpen,
			Priority:    priority,
			Notes: fmt.Sprintf("Auto-generated PPM task for %s. Last serviced %s. %d days overdue.",
				asset.Name, asset.LastServiceDate.Format("2006-01-02"), days),
			AssigneeID:    assigneeID,
			AutoGenerated: true,
		})
		report.Details = append(report.Details, detail)
	}

	if len(batch) > 0 {
		if err := s.tasks.InsertTasks(ctx, batch); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("insert task batch: %v", err))
		} else {
			report.CreatedCount = len(batch)
			for _, task := range batch {
				s.notifyCreated(task)
			}
		}
	}

	log.WithFields(log.Fields{
		"run_id":  report.RunID,
		"created": report.CreatedCount,
		"skipped": report.SkippedNoPlantRoom,
		"errors":  len(report.Errors),
	}).Info("PPM generation run finished")
	return report
}
