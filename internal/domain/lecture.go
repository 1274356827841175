package domain

import "context"

// Canonical weekday names used in persisted records. Source schedule cells use
// single-character Korean day symbols; they are translated to these during
// ingestion and query validation.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// ProfessorUnassigned fills the professor field when the source catalog leaves
// it blank.
const ProfessorUnassigned = "unassigned"

// LectureRecord is one canonical lecture block: a course occupying one room on
// one weekday between two clock times. Times are zero-padded "HH:MM" strings,
// which makes lexicographic comparison equal to chronological comparison.
type LectureRecord struct {
	Building   int    `json:"building"`
	Room       string `json:"room"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Professor  string `json:"professor"`
}

// Key identifies a record for deduplication: later records with an identical
// key are dropped during normalization (first occurrence wins).
func (l *LectureRecord) Key() LectureKey {
	return LectureKey{
		Building:  l.Building,
		Room:      l.Room,
		Day:       l.Day,
		StartTime: l.StartTime,
		EndTime:   l.EndTime,
		CourseID:  l.CourseID,
	}
}

// LectureKey is the uniqueness key of a LectureRecord.
type LectureKey struct {
	Building  int
	Room      string
	Day       string
	StartTime string
	EndTime   string
	CourseID  string
}

// LectureSummary is the compact lecture shape embedded in API responses.
type LectureSummary struct {
	CourseName string `json:"course_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Professor  string `json:"professor"`
}

// Summary converts a record to its response shape.
func (l *LectureRecord) Summary() *LectureSummary {
	return &LectureSummary{
		CourseName: l.CourseName,
		StartTime:  l.StartTime,
		EndTime:    l.EndTime,
		Professor:  l.Professor,
	}
}

// LectureRepository defines the interface for lecture storage. Records are
// written only by the ingestion pipeline and are read-only at query time.
type LectureRepository interface {
	// ReplaceSchedule deletes every record of the given buildings and inserts
	// the batch. No transaction is taken: a concurrent reader may observe a
	// transient empty state mid-replace.
	ReplaceSchedule(ctx context.Context, buildings []int, lectures []*LectureRecord) error
	// ListByBuildingAndDay returns a building's records for one day, ordered
	// by start time. roomPrefix optionally narrows to rooms whose number
	// starts with the prefix; empty means no filter.
	ListByBuildingAndDay(ctx context.Context, building int, day, roomPrefix string) ([]*LectureRecord, error)
	// ListByRoomAndDay returns one room's records for one day, ordered by
	// start time. limit <= 0 means no limit.
	ListByRoomAndDay(ctx context.Context, building int, room, day string, limit int) ([]*LectureRecord, error)
	// DistinctRooms returns every room number known for the building,
	// independent of weekday, optionally narrowed by prefix.
	DistinctRooms(ctx context.Context, building int, roomPrefix string) ([]string, error)
	// DistinctBuildings returns every building identifier present in the
	// store, ascending.
	DistinctBuildings(ctx context.Context) ([]int, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
