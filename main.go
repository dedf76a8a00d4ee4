package main

import (
	"fmt"
	"log"
	"os"

	"cronwatch/config"
	"cronwatch/db"
	"cronwatch/handlers"
	"cronwatch/middleware"
	"cronwatch/models"
	"cronwatch/services"

	"github.com/gin-gonic/gin"
)

func runMigrations() {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("Failed to read schema.sql:", err)
	}

	if _, err := db.GetDB().Exec(string(sqlBytes)); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}
	log.Println("Database schema verified")
}

func loadJobs(cfg config.Config) []models.JobConfig {
	if cfg.JobsFile == "" {
		return config.DefaultJobs()
	}
	jobs, err := config.LoadJobs(cfg.JobsFile)
	if err != nil {
		log.Fatal("Failed to load jobs file: ", err)
	}
	return jobs
}

func main() {
	cfg := config.Load()
	log.Printf(
		"Config: port=%s interval=%s simulation=%v auto_monitor=%v history=%v",
		cfg.Port,
		cfg.MonitorInterval,
		cfg.SimulationMode,
		cfg.AutoMonitor,
		cfg.DatabaseURL != "",
	)

	// Check history is optional; without a database the in-memory
	// cache still serves /status.
	if cfg.DatabaseURL != "" {
		if err := db.InitDB(cfg.DatabaseURL); err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		runMigrations()
	} else {
		log.Println("Check history disabled: DATABASE_URL not set")
	}

	jobs := loadJobs(cfg)
	log.Printf("Loaded %d job definitions", len(jobs))

	sims := services.NewSimRegistry()
	if cfg.SimulationMode {
		sims.Setup(jobs)
	}

	var initial services.ActiveJobSource = services.ProcessScanner{}
	if cfg.SimulationMode {
		initial = sims
	}
	monitor := services.NewMonitor(initial)
	manager := services.NewMonitorManager()
	defer manager.StopAll()

	handlers.Setup(cfg, monitor, sims, manager, jobs)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/", handlers.Health)
	r.GET("/integration.json", handlers.GetIntegrationJSON)

	r.POST("/tick", handlers.Tick)
	r.POST("/monitor", handlers.StartMonitor)
	r.POST("/monitor/stop", handlers.StopMonitor)

	r.GET("/status", handlers.GetStatus)
	r.GET("/jobs", handlers.ListActiveJobs)

	r.POST("/simulate/start", handlers.SimulateStart)
	r.POST("/simulate/stop", handlers.SimulateStop)

	r.GET("/stats/overview", handlers.GetStatsOverview)
	r.GET("/stats/job/:name", handlers.GetJobStats)
	r.GET("/history", handlers.GetCheckHistory)

	if cfg.AutoMonitor {
		log.Println("Auto monitor enabled for default channel")
		src := initial
		manager.Start("default", cfg.MonitorInterval, func() {
			handlers.RunScheduledCheck("default", cfg.WebhookURL, jobs, src)
		})
	}

	fmt.Println("Server starting on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}
