package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/plant-maintenance/internal/auth"
	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/handlers"
	"github.com/ukydev/plant-maintenance/internal/middleware"
	"github.com/ukydev/plant-maintenance/internal/notify"
	"github.com/ukydev/plant-maintenance/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "maintenance"
	}
	database := client.Database(dbName)

	plantRooms := &db.MongoPlantRoomCollection{Collection: database.Collection("plantrooms")}
	assets := &db.MongoAssetCollection{Collection: database.Collection("assets")}
	tasks := &db.MongoTaskCollection{Collection: database.Collection("tasks")}
	inspections := &db.MongoInspectionCollection{Collection: database.Collection("inspections")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	if err := db.EnsureTaskIndexes(context.Background(), database.Collection("tasks")); err != nil {
		log.WithError(err).Fatal("Failed to create task indexes")
	}

	var notifier scheduler.Notifier
	if mq, err := notify.NewMQTTNotifier(); err != nil {
		log.WithError(err).Warn("MQTT notifier disabled")
	} else if mq != nil {
		notifier = mq
		defer mq.Close()
	}

	sched := scheduler.NewService(assets, plantRooms, tasks, users, notifier)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}
	authMw := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	authHandler := handlers.NewAuthHandler(authService, users)
	plantRoomHandler := handlers.NewPlantRoomHandler(plantRooms)
	assetHandler := handlers.NewAssetHandler(assets)
	taskHandler := handlers.NewTaskHandler(tasks, sched)
	inspectionHandler := handlers.NewInspectionHandler(inspections, sched)
	automationHandler := handlers.NewAutomationHandler(sched, os.Getenv("AUTOMATION_TOKEN"))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/api/auth/change-password", authHandler.ChangePassword)
	mux.HandleFunc("/api/plantrooms", plantRoomHandler.PlantRooms)
	mux.HandleFunc("/api/plantrooms/", plantRoomHandler.PlantRoomByID)
	mux.HandleFunc("/api/assets", assetHandler.Assets)
	mux.HandleFunc("/api/assets/", assetHandler.AssetByID)
	mux.HandleFunc("/api/tasks", taskHandler.Tasks)
	mux.HandleFunc("/api/tasks/overdue", taskHandler.Overdue)
	mux.HandleFunc("/api/tasks/", taskHandler.TaskByID)
	mux.HandleFunc("/api/inspections", inspectionHandler.Inspections)
	mux.Handle("/api/report-form", authMw.RequirePermission("create_task")(http.HandlerFunc(inspectionHandler.ReportForm)))
	mux.HandleFunc("/api/automation/run-ppm", automationHandler.RunPPM)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	handler := rateLimiter.RateLimit(100, 60)(authMw.Authenticate(mux))

	startPPMCron(sched)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// startPPMCron schedules the daily in-process PPM generation run. Set
// PPM_CRON=disabled when an external automation owns the trigger.
func startPPMCron(sched *scheduler.Service) {
	spec := os.Getenv("PPM_CRON")
	if spec == "disabled" {
		log.Info("In-process PPM cron disabled")
		return
	}
	if spec == "" {
		spec = "0 6 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		report := sched.GenerateAutoPPMTasks(context.Background(), os.Getenv("PPM_ASSIGNEE_ID"))
		if len(report.Errors) > 0 {
			log.WithFields(log.Fields{
				"run_id": report.RunID,
				"errors": report.Errors,
			}).Error("Scheduled PPM run had errors")
		}
	})
	if err != nil {
		log.WithError(err).WithField("spec", spec).Fatal("Invalid PPM_CRON spec")
	}
	c.Start()
	log.WithField("spec", spec).Info("PPM generation cron started")
}
