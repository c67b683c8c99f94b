package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow-up source types.
const (
	SourceLog  = "LOG"
	SourceForm = "FORM"
)

// followUpLeadDays is how far out a corrective follow-up task is due.
const followUpLeadDays = 3

// FollowUpRequest describes the inspection log or report form entry that
// triggered a corrective follow-up task.
type FollowUpRequest struct {
	SourceType  string             // "LOG" or "FORM"
	SourceID    string             // identifier of the originating entry
	Issue       string             // description of the defect
	PlantRoomID primitive.ObjectID
	AssetID     string // optional
	Priority    string // defaults to Medium
}

// CreateFollowUpTask creates a single corrective-maintenance task due three
// days from now, referencing the originating entry. The task reference is
// FOLLOWUP-<SOURCE_TYPE>-<millisecond timestamp>.
func (s *Service) CreateFollowUpTask(ctx context.Context, req FollowUpRequest) (*models.MaintenanceTask, error) {
	sourceType := strings.ToUpper(strings.TrimSpace(req.SourceType))
	if sourceType != SourceLog && sourceType != SourceForm {
		return nil, fmt.Errorf("invalid follow-up source type %q", req.SourceType)
	}
	if req.Issue == "" {
		return nil, fmt.Errorf("follow-up issue description is required")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	now := s.now()
	task := models.MaintenanceTask{
		TaskRef:     fmt.Sprintf("FOLLOWUP-%s-%d", sourceType, now.UnixMilli()),
		PlantRoomID: req.PlantRoomID,
		AssetID:     req.AssetID,
		DueDate:     now.AddDate(0, 0, followUpLeadDays),
		Type:        models.TaskTypeCorrective,
		Status:      models.TaskStatusOpen,
		Priority:    priority,
		Notes:       fmt.Sprintf("Follow-up from %s entry %s: %s", strings.ToLower(sourceType), req.SourceID, req.Issue),
	}

	created, err := s.tasks.InsertTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create follow-up task: %w", err)
	}
	s.notifyCreated(*created)
	return created, nil
}
