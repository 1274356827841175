package schedule

import (
	"testing"

	"lectureroomfinder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRows(t *testing.T) {
	t.Run("one row two blocks one room", func(t *testing.T) {
		rows := []domain.CourseRow{
			{
				CourseID:    "12345-01",
				CourseName:  "자료구조",
				Professor:   "김교수",
				RawSchedule: "월(10:30~11:45)/수(10:30~11:45)/310관 727호",
			},
		}
		res := NormalizeRows(rows)
		require.Len(t, res.Records, 2)
		assert.Empty(t, res.Warnings)
		assert.Zero(t, res.Duplicates)
		assert.Zero(t, res.DroppedTokens)

		first := res.Records[0]
		assert.Equal(t, 310, first.Building)
		assert.Equal(t, "727", first.Room)
		assert.Equal(t, domain.Monday, first.Day)
		assert.Equal(t, "10:30", first.StartTime)
		assert.Equal(t, "11:45", first.EndTime)
		assert.Equal(t, "12345-01", first.CourseID)
		assert.Equal(t, "김교수", first.Professor)
		assert.Equal(t, domain.Wednesday, res.Records[1].Day)
	})

	t.Run("missing professor gets sentinel", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "세미나", Professor: "  ", RawSchedule: "금(09:00~10:15)/303관 802호"},
		}
		res := NormalizeRows(rows)
		require.Len(t, res.Records, 1)
		assert.Equal(t, domain.ProfessorUnassigned, res.Records[0].Professor)
	})

	t.Run("duplicates across rows are dropped first wins", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "A", Professor: "P1", RawSchedule: "월(10:30~11:45)/303관 802호"},
			{CourseID: "1-01", CourseName: "A", Professor: "P2", RawSchedule: "월(10:30~11:45)/303관 802호"},
		}
		res := NormalizeRows(rows)
		require.Len(t, res.Records, 1)
		assert.Equal(t, 1, res.Duplicates)
		assert.Equal(t, "P1", res.Records[0].Professor)
	})

	t.Run("same slot different course is kept", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "A", Professor: "P", RawSchedule: "월(10:30~11:45)/303관 802호"},
			{CourseID: "2-01", CourseName: "B", Professor: "P", RawSchedule: "월(10:30~11:45)/303관 802호"},
		}
		res := NormalizeRows(rows)
		assert.Len(t, res.Records, 2)
		assert.Zero(t, res.Duplicates)
	})

	t.Run("token without room is dropped others kept", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "A", Professor: "P", RawSchedule: "월(09:00~10:15)/수(09:00~10:15)/금(09:00~10:15)/303관 802호/805호"},
		}
		res := NormalizeRows(rows)
		assert.Len(t, res.Records, 2)
		assert.Equal(t, 1, res.DroppedTokens)
		assert.Equal(t, "802", res.Records[0].Room)
		assert.Equal(t, "805", res.Records[1].Room)
	})

	t.Run("row with only unrecognized segments yields warnings", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "A", Professor: "P", RawSchedule: "원격수업"},
		}
		res := NormalizeRows(rows)
		assert.Empty(t, res.Records)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "unrecognized schedule segment")
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		rows := []domain.CourseRow{
			{CourseID: "1-01", CourseName: "A", Professor: "P", RawSchedule: "화0,1,2, 목0,1,2/310관 727호"},
		}
		first := NormalizeRows(rows)
		second := NormalizeRows(rows)
		assert.Equal(t, first.Records, second.Records)
		assert.Len(t, first.Records, 2)
	})
}

func TestBuildings(t *testing.T) {
	records := []*domain.LectureRecord{
		{Building: 310}, {Building: 303}, {Building: 310}, {Building: 101},
	}
	assert.Equal(t, []int{101, 303, 310}, Buildings(records))
	assert.Empty(t, Buildings(nil))
}
