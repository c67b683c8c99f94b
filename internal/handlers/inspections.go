package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
	"github.com/ukydev/plant-maintenance/internal/scheduler"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionHandler handles inspection log requests. Logging a defect raises
// a corrective follow-up task through the scheduler.
type InspectionHandler struct {
	inspections db.InspectionCollection
	sched       *scheduler.Service
}

// NewInspectionHandler creates a new inspection handler.
func NewInspectionHandler(inspections db.InspectionCollection, sched *scheduler.Service) *InspectionHandler {
	return &InspectionHandler{inspections: inspections, sched: sched}
}

type inspectionResponse struct {
	Inspection *models.InspectionLog   `json:"inspection"`
	FollowUp   *models.MaintenanceTask `json:"follow_up,omitempty"`
}

// Inspections handles GET (list) and POST (create) on /api/inspections.
func (h *InspectionHandler) Inspections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := bson.M{}
		if roomID := r.URL.Query().Get("plant_room_id"); roomID != "" {
			filter["plant_room_id"] = roomID
		}
		logs, err := h.inspections.FindInspections(r.Context(), filter)
		if err != nil {
			http.Error(w, "Failed to fetch inspections", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(logs)
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var entry models.InspectionLog
		if err := json.Unmarshal(body, &entry); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if entry.PlantRoomID.IsZero() {
			http.Error(w, "plant_room_id is required", http.StatusBadRequest)
			return
		}
		if entry.DefectFound && entry.Issue == "" {
			http.Error(w, "issue is required when a defect is found", http.StatusBadRequest)
			return
		}

		created, err := h.inspections.InsertInspection(r.Context(), entry)
		if err != nil {
			http.Error(w, "Failed to create inspection", http.StatusInternalServerError)
			return
		}

		resp := inspectionResponse{Inspection: created}
		if created.DefectFound {
			followUp, err := h.sched.CreateFollowUpTask(r.Context(), scheduler.FollowUpRequest{
				SourceType:  scheduler.SourceLog,
				SourceID:    created.ID.Hex(),
				Issue:       created.Issue,
				PlantRoomID: created.PlantRoomID,
				AssetID:     created.AssetID,
			})
			if err != nil {
				// The inspection record is already saved; report the
				// follow-up failure without rolling it back.
				log.WithError(err).Error("Failed to create follow-up task for inspection")
				http.Error(w, "Inspection saved but follow-up task failed", http.StatusInternalServerError)
				return
			}
			resp.FollowUp = followUp
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// reportFormRequest is a corrective-maintenance report submitted from the
// dashboard form.
type reportFormRequest struct {
	PlantRoomID string `json:"plant_room_id"`
	AssetID     string `json:"asset_id,omitempty"`
	Issue       string `json:"issue"`
	Priority    string `json:"priority,omitempty"`
	ReportedBy  string `json:"reported_by"`
}

// ReportForm handles POST /api/report-form, creating a corrective follow-up
// task sourced from a form submission.
func (h *InspectionHandler) ReportForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var form reportFormRequest
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if form.Issue == "" {
		http.Error(w, "issue is required", http.StatusBadRequest)
		return
	}
	roomID, err := primitive.ObjectIDFromHex(form.PlantRoomID)
	if err != nil {
		http.Error(w, "Invalid plant_room_id", http.StatusBadRequest)
		return
	}

	task, err := h.sched.CreateFollowUpTask(r.Context(), scheduler.FollowUpRequest{
		SourceType:  scheduler.SourceForm,
		SourceID:    form.ReportedBy,
		Issue:       form.Issue,
		PlantRoomID: roomID,
		AssetID:     form.AssetID,
		Priority:    form.Priority,
	})
	if err != nil {
		http.Error(w, "Failed to create follow-up task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}
