package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"second-brain/handlers"
	"second-brain/logger"
	"second-brain/middleware"
	"second-brain/repository"
)

func main() {
	// Initialize structured logger
	appLogger, err := logger.New(logger.Config{
		Level:  slog.LevelInfo,
		LogDir: os.Getenv("LOG_DIR"),
	})
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Create data directory if it doesn't exist
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	dbPath := fmt.Sprintf("%s/second_brain.db", dataDir)
	appLogger.Info("using database", "path", dbPath)

	// Initialize database
	db, err := repository.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	// Initialize repositories
	taskRepo, err := repository.NewTaskRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize task repository:", err)
	}

	noteRepo, err := repository.NewNoteRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize note repository:", err)
	}

	logRepo, err := repository.NewLogRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize log repository:", err)
	}

	habitRepo, err := repository.NewHabitRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize habit repository:", err)
	}

	appLogger.Info("database initialized successfully")

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskRepo, appLogger)
	noteHandler := handlers.NewNoteHandler(noteRepo, appLogger)
	logHandler := handlers.NewLogHandler(logRepo, appLogger)
	habitHandler := handlers.NewHabitHandler(habitRepo, appLogger)
	insightsHandler := handlers.NewInsightsHandler(taskRepo, noteRepo, habitRepo, appLogger)
	exportHandler := handlers.NewExportHandler(taskRepo, noteRepo, logRepo, habitRepo, appLogger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(appLogger))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetAllTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Get("/", noteHandler.GetAllNotes)
		r.Post("/", noteHandler.CreateNote)
		r.Put("/{id}", noteHandler.UpdateNote)
		r.Delete("/{id}", noteHandler.DeleteNote)
	})

	r.Route("/api/logs", func(r chi.Router) {
		r.Get("/", logHandler.GetRecentLogs)
		r.Post("/", logHandler.CreateLog)
		r.Get("/today", logHandler.GetTodayLog)
		r.Put("/{id}", logHandler.UpdateLog)
		r.Delete("/{id}", logHandler.DeleteLog)
	})

	r.Route("/api/habits", func(r chi.Router) {
		r.Get("/", habitHandler.GetAllHabits)
		r.Post("/{id}/complete", habitHandler.CompleteHabit)
		r.Post("/{id}/skip", habitHandler.SkipHabit)
	})
	r.Post("/api/initialize-habits", habitHandler.InitializeHabits)

	r.Get("/api/daily-recap", insightsHandler.DailyRecap)
	r.Get("/api/search", insightsHandler.Search)
	r.Get("/api/dashboard", insightsHandler.Dashboard)

	r.Get("/api/export/csv", exportHandler.ExportCSV)
	r.Get("/api/export/json", exportHandler.ExportJSON)

	// Health check
	r.Get("/health", handlers.Health)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	appLogger.Info("server starting", "port", port)
	fmt.Printf("🚀 Second Brain running at http://localhost:%s\n", port)
	fmt.Println("\n📋 API endpoints:")
	fmt.Println("   GET/POST       http://localhost:" + port + "/api/tasks")
	fmt.Println("   GET/PUT/DELETE http://localhost:" + port + "/api/tasks/{id}")
	fmt.Println("   GET/POST       http://localhost:" + port + "/api/notes")
	fmt.Println("   GET/POST       http://localhost:" + port + "/api/logs")
	fmt.Println("   GET            http://localhost:" + port + "/api/logs/today")
	fmt.Println("   GET            http://localhost:" + port + "/api/habits")
	fmt.Println("   GET            http://localhost:" + port + "/api/daily-recap")
	fmt.Println("   GET            http://localhost:" + port + "/api/search?q=")
	fmt.Println("   GET            http://localhost:" + port + "/api/export/csv")
	fmt.Println("   GET            http://localhost:" + port + "/api/export/json")
	fmt.Println("   GET            http://localhost:" + port + "/health")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
