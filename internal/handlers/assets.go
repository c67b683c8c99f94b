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

// AssetHandler handles equipment asset CRUD requests.
type AssetHandler struct {
	assets db.AssetCollection
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(assets db.AssetCollection) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// Assets handles GET (list) and POST (create) on /api/assets.
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := bson.M{}
		if ref := r.URL.Query().Get("plant_room_ref"); ref != "" {
			filter["plant_room_ref"] = ref
		}
		if op := r.URL.Query().Get("operational"); op != "" {
			filter["operational"] = op == "true"
		}
		assets, err := h.assets.FindAssets(r.Context(), filter)
		if err != nil {
			http.Error(w, "Failed to fetch assets", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(assets)
	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var asset models.Asset
		if err := json.Unmarshal(body, &asset); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if asset.Name == "" || asset.PlantRoomRef == "" {
			http.Error(w, "name and plant_room_ref are required", http.StatusBadRequest)
			return
		}
		asset.Frequency = string(models.NormalizeFrequency(asset.Frequency))
		if err := h.assets.InsertAsset(r.Context(), asset); err != nil {
			http.Error(w, "Failed to create asset", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(asset)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// AssetByID handles GET, PUT and DELETE on /api/assets/{id}.
func (h *AssetHandler) AssetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/assets/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		asset, err := h.assets.FindAssetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Asset not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(asset)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var asset models.Asset
		if err := json.Unmarshal(body, &asset); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if asset.Frequency != "" {
			asset.Frequency = string(models.NormalizeFrequency(asset.Frequency))
		}
		if err := h.assets.UpdateAsset(r.Context(), id, asset); err != nil {
			http.Error(w, "Failed to update asset", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Asset updated successfully"})
	case http.MethodDelete:
		if err := h.assets.DeleteAsset(r.Context(), id); err != nil {
			http.Error(w, "Failed to delete asset", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Asset deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
