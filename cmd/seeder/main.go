package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// PlantRoom mirrors the API's plant room payload.
type PlantRoom struct {
	RefCode string `json:"ref_code"`
	Name    string `json:"name"`
	Block   string `json:"block"`
	Site    string `json:"site"`
}

// Asset mirrors the API's asset payload.
type Asset struct {
	PlantRoomRef    string     `json:"plant_room_ref"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Manufacturer    string     `json:"manufacturer"`
	Operational     bool       `json:"operational"`
	Frequency       string     `json:"frequency"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
}

var blocks = []string{"A", "B", "C", "D"}

var assetTemplates = []struct {
	category     string
	manufacturer string
	frequency    string
}{
	{"boiler", "Vaillant", "annually"},
	{"boiler", "Worcester Bosch", "annually"},
	{"pump", "Grundfos", "quarterly"},
	{"pump", "Wilo", "quarterly"},
	{"water_heater", "Andrews", "monthly"},
	{"ahu", "Daikin", "monthly"},
	{"controls", "Trend", "weekly"},
	{"other", "Generic", "fortnightly"},
}

func postJSON(apiURL, path, token string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, apiURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	token := os.Getenv("SEED_AUTH_TOKEN")

	roomCount := 6
	if v := os.Getenv("SEED_PLANT_ROOMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			roomCount = n
		}
	}
	assetsPerRoom := 4
	if v := os.Getenv("SEED_ASSETS_PER_ROOM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			assetsPerRoom = n
		}
	}

	log.WithFields(log.Fields{
		"api_url":         apiURL,
		"plant_rooms":     roomCount,
		"assets_per_room": assetsPerRoom,
	}).Info("Seeding demo data")

	created := 0
	for i := 0; i < roomCount; i++ {
		block := blocks[i%len(blocks)]
		room := PlantRoom{
			RefCode: fmt.Sprintf("PR-%s-%02d", block, i+1),
			Name:    fmt.Sprintf("Plant Room %s%d", block, i+1),
			Block:   block,
			Site:    "Main Campus",
		}
		if err := postJSON(apiURL, "/api/plantrooms", token, room); err != nil {
			log.WithError(err).WithField("ref", room.RefCode).Error("Failed to create plant room")
			continue
		}

		for j := 0; j < assetsPerRoom; j++ {
			tmpl := assetTemplates[rand.Intn(len(assetTemplates))]
			// Backdate services so some assets come up due immediately.
			last := time.Now().AddDate(0, 0, -rand.Intn(400))
			asset := Asset{
				PlantRoomRef:    room.RefCode,
				Name:            fmt.Sprintf("%s %s-%d", tmpl.manufacturer, room.RefCode, j+1),
				Category:        tmpl.category,
				Manufacturer:    tmpl.manufacturer,
				Operational:     rand.Intn(10) > 0, // roughly one in ten out of service
				Frequency:       tmpl.frequency,
				LastServiceDate: &last,
			}
			if err := postJSON(apiURL, "/api/assets", token, asset); err != nil {
				log.WithError(err).WithField("asset", asset.Name).Error("Failed to create asset")
				continue
			}
			created++
		}
	}

	log.WithField("assets_created", created).Info("Seeding completed")
}
