package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"lectureroomfinder/internal/delivery/http/helpers"
	"lectureroomfinder/internal/domain"
)

type RoomController struct {
	Logger  *slog.Logger
	Service domain.RoomStatusService
}

func NewRoomController(logger *slog.Logger, svc domain.RoomStatusService) *RoomController {
	return &RoomController{
		Logger:  logger,
		Service: svc,
	}
}

// ListRoomStatusesSuccessResponse is the success response envelope for GET /api/rooms (200).
type ListRoomStatusesSuccessResponse struct {
	Data  []*domain.RoomStatus `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListRoomStatuses godoc
// @Summary Room occupancy for a building at a point in time
// @Description Classifies every room of the building as in_use, soon, or empty at the given clock time on the given weekday. Rooms with no lectures that day are included as empty. Sorted basement floors first, then ascending floors, ties by room number.
// @Tags rooms
// @Produce json
// @Param building query int true "Building identifier, e.g. 303"
// @Param hour query int true "Hour of day (0-23)"
// @Param minute query int true "Minute (0-59)"
// @Param weekday query string true "Weekday symbol (월, 화, 수, 목, 금, 토, 일)"
// @Param floor query string false "Floor prefix filter; omit or 'all' for every floor"
// @Success 200 {object} controllers.ListRoomStatusesSuccessResponse "data is an array of room statuses"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rooms [get]
func (c *RoomController) ListRoomStatuses(w http.ResponseWriter, r *http.Request) {
	building, err := helpers.RequireIntQuery(r, "building")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	hour, err := helpers.RequireIntQuery(r, "hour")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	minute, err := helpers.RequireIntQuery(r, "minute")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	weekday := strings.TrimSpace(r.URL.Query().Get("weekday"))
	if weekday == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing query parameter \"weekday\"")
		return
	}
	floor := strings.TrimSpace(r.URL.Query().Get("floor"))
	if floor == "all" {
		floor = ""
	}

	statuses, err := c.Service.RoomStatuses(r.Context(), building, hour, minute, weekday, floor)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWeekday) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "weekday must be one of 월, 화, 수, 목, 금, 토, 일")
			return
		}
		if errors.Is(err, domain.ErrInvalidTime) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "hour must be 0-23 and minute 0-59")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, statuses)
}

// RoomTimetableSuccessResponse is the success response envelope for GET /api/timetable (200).
type RoomTimetableSuccessResponse struct {
	Data  []*domain.LectureSummary `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// RoomTimetable godoc
// @Summary One room's timetable for a weekday
// @Description Returns the room's lectures for the given weekday ordered by start time. An unknown room yields an empty list, not an error.
// @Tags rooms
// @Produce json
// @Param building query int true "Building identifier"
// @Param room_number query string true "Room number, e.g. 802 or 802-1"
// @Param weekday query string true "Weekday symbol (월-일)"
// @Param limit query int false "Maximum entries to return (1-200)"
// @Success 200 {object} controllers.RoomTimetableSuccessResponse "data is an array of lectures"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/timetable [get]
func (c *RoomController) RoomTimetable(w http.ResponseWriter, r *http.Request) {
	building, err := helpers.RequireIntQuery(r, "building")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	room := strings.TrimSpace(r.URL.Query().Get("room_number"))
	if room == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing query parameter \"room_number\"")
		return
	}
	weekday := strings.TrimSpace(r.URL.Query().Get("weekday"))
	if weekday == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing query parameter \"weekday\"")
		return
	}
	limit := helpers.OptionalIntQuery(r, "limit", 0)

	lectures, err := c.Service.RoomTimetable(r.Context(), building, room, weekday, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWeekday) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "weekday must be one of 월, 화, 수, 목, 금, 토, 일")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, lectures)
}

// ListBuildingsSuccessResponse is the success response envelope for GET /api/buildings (200).
type ListBuildingsSuccessResponse struct {
	Data  []int             `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBuildings godoc
// @Summary List buildings known to the store
// @Tags rooms
// @Produce json
// @Success 200 {object} controllers.ListBuildingsSuccessResponse "data is an array of building identifiers, ascending"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/buildings [get]
func (c *RoomController) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := c.Service.Buildings(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, buildings)
}

// ListFloorsSuccessResponse is the success response envelope for GET /api/floors (200).
type ListFloorsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListFloors godoc
// @Summary List a building's floors
// @Description Floor labels derived from the building's room numbers, basement floors first.
// @Tags rooms
// @Produce json
// @Param building query int true "Building identifier"
// @Success 200 {object} controllers.ListFloorsSuccessResponse "data is an array of floor labels"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/floors [get]
func (c *RoomController) ListFloors(w http.ResponseWriter, r *http.Request) {
	building, err := helpers.RequireIntQuery(r, "building")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	floors, err := c.Service.Floors(r.Context(), building)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, floors)
}
