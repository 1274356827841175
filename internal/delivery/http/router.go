package http

import (
	"net/http"

	"lectureroomfinder/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(roomController *controllers.RoomController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/rooms", roomController.ListRoomStatuses)
	mux.HandleFunc("GET /api/timetable", roomController.RoomTimetable)
	mux.HandleFunc("GET /api/buildings", roomController.ListBuildings)
	mux.HandleFunc("GET /api/floors", roomController.ListFloors)

	// Health
	mux.HandleFunc("GET /health", healthController.Check)
	mux.HandleFunc("HEAD /health", healthController.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
