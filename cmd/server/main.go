package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"lectureroomfinder/config"
	_ "lectureroomfinder/docs"
	delivery "lectureroomfinder/internal/delivery/http"
	"lectureroomfinder/internal/delivery/http/controllers"
	"lectureroomfinder/internal/delivery/http/middleware"
	"lectureroomfinder/internal/repository/postgres"
	"lectureroomfinder/internal/services"

	_ "github.com/lib/pq"
)

// @title Lecture Room Occupancy API
// @version 1.0
// @description Real-time occupancy status of university lecture rooms, derived from the weekly class schedule.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger("server")

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	repo := postgres.NewLectureRepository(db)
	statusService := services.NewRoomStatusService(repo, 10*time.Second)

	roomController := controllers.NewRoomController(logger, statusService)
	healthController := controllers.NewHealthController(repo)

	mux := delivery.NewRouter(roomController, healthController)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
