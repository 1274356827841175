package domain

import "context"

// Room occupancy statuses at a point in time.
const (
	StatusInUse = "in_use"
	StatusSoon  = "soon"
	StatusEmpty = "empty"
)

// RoomStatus is the derived occupancy state of one room at the queried time.
// It is recomputed on every request and never cached, since it depends on the
// clock time it was asked for.
type RoomStatus struct {
	Building         int               `json:"building"`
	Floor            string            `json:"floor"`
	RoomNumber       string            `json:"room_number"`
	Status           string            `json:"status"`
	CurrentLecture   *LectureSummary   `json:"current_lecture"`
	NextLecture      *LectureSummary   `json:"next_lecture"`
	UpcomingLectures []*LectureSummary `json:"next_lectures"`
	AvailableMinutes int               `json:"available_minutes"`
	SoonMessage      *string           `json:"soon_message"`
}

// RoomStatusService defines the business logic of the query pipeline.
type RoomStatusService interface {
	// RoomStatuses classifies every room of the building (optionally narrowed
	// to a floor prefix) at hour:minute on the given weekday. The weekday is a
	// source-locale day symbol; an unknown symbol yields ErrInvalidWeekday.
	// Rooms with no lectures that day are still included.
	RoomStatuses(ctx context.Context, building, hour, minute int, weekdaySymbol, floor string) ([]*RoomStatus, error)
	// RoomTimetable returns one room's lectures for a day, ordered by start
	// time. limit <= 0 means all; values above MaxTimetableLimit are clamped.
	RoomTimetable(ctx context.Context, building int, room, weekdaySymbol string, limit int) ([]*LectureSummary, error)
	// Buildings lists every building known to the store.
	Buildings(ctx context.Context) ([]int, error)
	// Floors lists the derived floor labels of a building, basement floors
	// first, then ascending above-ground floors.
	Floors(ctx context.Context, building int) ([]string, error)
}

// MaxTimetableLimit caps the timetable limit query parameter.
const MaxTimetableLimit = 200
