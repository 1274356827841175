package status

import (
	"fmt"
	"sort"

	"lectureroomfinder/internal/domain"
)

const (
	// SoonThreshold is the cutoff in minutes between "soon" and "empty" when a
	// next lecture exists.
	SoonThreshold = 60
	// NoMoreLecturesMinutes is the available-minutes sentinel for a room with
	// no further lectures that day.
	NoMoreLecturesMinutes = 9999
)

// Classification is the occupancy state of one room at a clock time, before
// room identity (building, floor, number) is attached.
type Classification struct {
	Status           string
	Current          *domain.LectureSummary
	Next             *domain.LectureSummary
	Upcoming         []*domain.LectureSummary
	AvailableMinutes int
	SoonMessage      *string
}

// Classify derives a room's state at clock time now ("HH:MM") from that
// room's lectures for the day, in any order. Lectures already over are
// ignored. If overlapping data yields more than one lecture covering now (an
// upstream invariant violation), the earliest by start time wins.
func Classify(now string, lectures []*domain.LectureRecord) Classification {
	var current *domain.LectureRecord
	var upcoming []*domain.LectureRecord
	for _, lec := range lectures {
		switch {
		case lec.StartTime <= now && now < lec.EndTime:
			if current == nil || lec.StartTime < current.StartTime {
				current = lec
			}
		case lec.StartTime > now:
			upcoming = append(upcoming, lec)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].StartTime < upcoming[j].StartTime })

	c := Classification{
		Status:           domain.StatusEmpty,
		AvailableMinutes: NoMoreLecturesMinutes,
		Upcoming:         make([]*domain.LectureSummary, 0, len(upcoming)),
	}
	for _, lec := range upcoming {
		c.Upcoming = append(c.Upcoming, lec.Summary())
	}
	if len(upcoming) > 0 {
		c.Next = c.Upcoming[0]
	}

	if current != nil {
		c.Status = domain.StatusInUse
		c.Current = current.Summary()
		c.AvailableMinutes = 0
		return c
	}
	if c.Next != nil {
		minutes := MinutesBetween(now, c.Next.StartTime)
		c.AvailableMinutes = minutes
		if minutes <= SoonThreshold {
			c.Status = domain.StatusSoon
		}
		msg := fmt.Sprintf("%s 후 다음 수업이 시작됩니다", FormatDuration(minutes))
		c.SoonMessage = &msg
	}
	return c
}
