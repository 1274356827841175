package postgres

import (
	"context"
	"database/sql"

	"lectureroomfinder/internal/domain"

	"github.com/lib/pq"
)

type LectureRepository struct {
	DB *sql.DB
}

func NewLectureRepository(db *sql.DB) domain.LectureRepository {
	return &LectureRepository{
		DB: db,
	}
}

// EnsureSchema creates the lectures table and its query index if they do not
// exist. The ingestion CLI calls this before the first batch.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS lectures (
			id BIGSERIAL PRIMARY KEY,
			building INT NOT NULL,
			room TEXT NOT NULL,
			day TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			course_id TEXT NOT NULL,
			course_name TEXT NOT NULL,
			professor TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_lectures_building_day_room ON lectures (building, day, room);
	`
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// ReplaceSchedule deletes every record of the given buildings, then inserts
// the batch. Deliberately not transactional: the ingestion pipeline accepts a
// narrow window where a concurrent reader sees a partially replaced building.
func (r *LectureRepository) ReplaceSchedule(ctx context.Context, buildings []int, lectures []*domain.LectureRecord) error {
	ids := make([]int64, len(buildings))
	for i, b := range buildings {
		ids[i] = int64(b)
	}
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM lectures WHERE building = ANY($1)`, pq.Array(ids)); err != nil {
		return err
	}
	const insert = `
		INSERT INTO lectures (building, room, day, start_time, end_time, course_id, course_name, professor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, lec := range lectures {
		if _, err := r.DB.ExecContext(ctx, insert, lec.Building, lec.Room, lec.Day, lec.StartTime, lec.EndTime, lec.CourseID, lec.CourseName, lec.Professor); err != nil {
			return err
		}
	}
	return nil
}

func (r *LectureRepository) ListByBuildingAndDay(ctx context.Context, building int, day, roomPrefix string) ([]*domain.LectureRecord, error) {
	query := `
		SELECT building, room, day, start_time, end_time, course_id, course_name, professor
		FROM lectures
		WHERE building = $1 AND day = $2
	`
	args := []any{building, day}
	if roomPrefix != "" {
		query += ` AND room LIKE $3 || '%'`
		args = append(args, roomPrefix)
	}
	query += ` ORDER BY start_time, room`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLectures(rows)
}

func (r *LectureRepository) ListByRoomAndDay(ctx context.Context, building int, room, day string, limit int) ([]*domain.LectureRecord, error) {
	query := `
		SELECT building, room, day, start_time, end_time, course_id, course_name, professor
		FROM lectures
		WHERE building = $1 AND room = $2 AND day = $3
		ORDER BY start_time
	`
	args := []any{building, room, day}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLectures(rows)
}

func (r *LectureRepository) DistinctRooms(ctx context.Context, building int, roomPrefix string) ([]string, error) {
	query := `SELECT DISTINCT room FROM lectures WHERE building = $1`
	args := []any{building}
	if roomPrefix != "" {
		query += ` AND room LIKE $2 || '%'`
		args = append(args, roomPrefix)
	}
	query += ` ORDER BY room`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rooms []string
	for rows.Next() {
		var room string
		if err := rows.Scan(&room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *LectureRepository) DistinctBuildings(ctx context.Context) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT building FROM lectures ORDER BY building`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var buildings []int
	for rows.Next() {
		var b int
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

func (r *LectureRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func scanLectures(rows *sql.Rows) ([]*domain.LectureRecord, error) {
	var lectures []*domain.LectureRecord
	for rows.Next() {
		lec := &domain.LectureRecord{}
		if err := rows.Scan(&lec.Building, &lec.Room, &lec.Day, &lec.StartTime, &lec.EndTime, &lec.CourseID, &lec.CourseName, &lec.Professor); err != nil {
			return nil, err
		}
		lectures = append(lectures, lec)
	}
	return lectures, rows.Err()
}
