package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
	"github.com/ukydev/plant-maintenance/internal/scheduler"
	"go.mongodb.org/mongo-driver/bson"
)

// TaskHandler handles maintenance task requests.
type TaskHandler struct {
	tasks db.TaskCollection
	sched *scheduler.Service
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(tasks db.TaskCollection, sched *scheduler.Service) *TaskHandler {
	return &TaskHandler{tasks: tasks, sched: sched}
}

// Tasks handles GET (list) and POST (create) on /api/tasks.
func (h *TaskHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := bson.M{}
		if status := r.URL.Query().Get("status"); status != "" {
			filter["status"] = status
		}
		if assetID := r.URL.Query().Get("asset_id"); assetID != "" {
			filter["asset_id"] = assetID
		}
		tasks, err := h.tasks.FindTasks(r.Context(), filter)
		if err != nil {
			http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tasks)
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var task models.MaintenanceTask
		if err := json.Unmarshal(body, &task); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if task.PlantRoomID.IsZero() || task.DueDate.IsZero() {
			http.Error(w, "plant_room_id and due_date are required", http.StatusBadRequest)
			return
		}
		if task.Status == "" {
			task.Status = models.TaskStatusOpen
		}
		if task.Priority == "" {
			task.Priority = models.TaskPriorityMedium
		}
		created, err := h.tasks.InsertTask(r.Context(), task)
		if err != nil {
			http.Error(w, "Failed to create task", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TaskByID handles GET, PUT and DELETE on /api/tasks/{id}.
func (h *TaskHandler) TaskByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		task, err := h.tasks.FindTaskByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(task)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var task models.MaintenanceTask
		if err := json.Unmarshal(body, &task); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.tasks.UpdateTask(r.Context(), id, task); err != nil {
			http.Error(w, "Failed to update task", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Task updated successfully"})
	case http.MethodDelete:
		if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
			http.Error(w, "Failed to delete task", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Task deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Overdue handles GET /api/tasks/overdue. A store failure is a 500, not an
// empty list.
func (h *TaskHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	overdue, err := h.sched.OverdueTasks(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch overdue tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overdue)
}
