package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// PlantRoomHandler handles plant room CRUD requests.
type PlantRoomHandler struct {
	rooms db.PlantRoomCollection
}

// NewPlantRoomHandler creates a new plant room handler.
func NewPlantRoomHandler(rooms db.PlantRoomCollection) *PlantRoomHandler {
	return &PlantRoomHandler{rooms: rooms}
}

// PlantRooms handles GET (list) and POST (create) on /api/plantrooms.
func (h *PlantRoomHandler) PlantRooms(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := bson.M{}
		if block := r.URL.Query().Get("block"); block != "" {
			filter["block"] = block
		}
		rooms, err := h.rooms.FindPlantRooms(r.Context(), filter)
		if err != nil {
			http.Error(w, "Failed to fetch plant rooms", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rooms)
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var room models.PlantRoom
		if err := json.Unmarshal(body, &room); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if room.RefCode == "" || room.Name == "" {
			http.Error(w, "ref_code and name are required", http.StatusBadRequest)
			return
		}
		if err := h.rooms.InsertPlantRoom(r.Context(), room); err != nil {
			http.Error(w, "Failed to create plant room", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(room)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// PlantRoomByID handles GET, PUT and DELETE on /api/plantrooms/{id}.
func (h *PlantRoomHandler) PlantRoomByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/plantrooms/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid plant room ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		room, err := h.rooms.FindPlantRoomByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Plant room not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(room)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var room models.PlantRoom
		if err := json.Unmarshal(body, &room); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.rooms.UpdatePlantRoom(r.Context(), id, room); err != nil {
			http.Error(w, "Failed to update plant room", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Plant room updated successfully"})
	case http.MethodDelete:
		if err := h.rooms.DeletePlantRoom(r.Context(), id); err != nil {
			http.Error(w, "Failed to delete plant room", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Plant room deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
