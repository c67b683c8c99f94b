package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/plant-maintenance/internal/automation"
	"github.com/ukydev/plant-maintenance/internal/scheduler"
)

// AutomationHandler exposes the scheduled-automation entry point. It is the
// HTTP face of scheduler.Service: remote automations POST here with a bearer
// credential instead of reimplementing generation logic.
type AutomationHandler struct {
	sched *scheduler.Service
	token string
}

// NewAutomationHandler creates a new automation handler. token is the shared
// bearer credential remote callers must present.
func NewAutomationHandler(sched *scheduler.Service, token string) *AutomationHandler {
	return &AutomationHandler{sched: sched, token: token}
}

// RunPPM handles POST /api/automation/run-ppm: runs PPM generation and
// reports counts of tasks created and overdue tasks found.
func (h *AutomationHandler) RunPPM(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.authorized(r) {
		http.Error(w, "Invalid automation token", http.StatusUnauthorized)
		return
	}

	var runReq automation.RunRequest
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &runReq); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
	}

	report := h.sched.GenerateAutoPPMTasks(r.Context(), runReq.AssigneeID)

	resp := automation.RunResponse{
		RunID:        report.RunID,
		TasksCreated: report.CreatedCount,
		Errors:       report.Errors,
	}
	overdue, err := h.sched.OverdueTasks(r.Context())
	if err != nil {
		resp.Errors = append(resp.Errors, err.Error())
	} else {
		resp.OverdueFound = len(overdue)
	}

	log.WithFields(log.Fields{
		"run_id":        resp.RunID,
		"tasks_created": resp.TasksCreated,
		"overdue_found": resp.OverdueFound,
	}).Info("Automation run completed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *AutomationHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}
