package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lectureroomfinder/internal/domain"
	"lectureroomfinder/internal/schedule"
	"lectureroomfinder/internal/status"
)

type roomStatusService struct {
	repo           domain.LectureRepository
	contextTimeout time.Duration
}

func NewRoomStatusService(repo domain.LectureRepository, timeout time.Duration) domain.RoomStatusService {
	return &roomStatusService{
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *roomStatusService) RoomStatuses(ctx context.Context, building, hour, minute int, weekdaySymbol, floor string) ([]*domain.RoomStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, domain.ErrInvalidTime
	}
	day, ok := schedule.CanonicalWeekday(weekdaySymbol)
	if !ok {
		return nil, domain.ErrInvalidWeekday
	}

	// The room universe is independent of the day filter: a room with no
	// lectures on the queried day must still appear, as empty.
	rooms, err := s.repo.DistinctRooms(ctx, building, floor)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	lectures, err := s.repo.ListByBuildingAndDay(ctx, building, day, floor)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}

	byRoom := make(map[string][]*domain.LectureRecord, len(rooms))
	for _, lec := range lectures {
		byRoom[lec.Room] = append(byRoom[lec.Room], lec)
	}

	now := fmt.Sprintf("%02d:%02d", hour, minute)
	out := make([]*domain.RoomStatus, 0, len(rooms))
	for _, room := range rooms {
		c := status.Classify(now, byRoom[room])
		out = append(out, &domain.RoomStatus{
			Building:         building,
			Floor:            status.ExtractFloor(room),
			RoomNumber:       room,
			Status:           c.Status,
			CurrentLecture:   c.Current,
			NextLecture:      c.Next,
			UpcomingLectures: c.Upcoming,
			AvailableMinutes: c.AvailableMinutes,
			SoonMessage:      c.SoonMessage,
		})
	}
	status.SortRoomStatuses(out)
	return out, nil
}

func (s *roomStatusService) RoomTimetable(ctx context.Context, building int, room, weekdaySymbol string, limit int) ([]*domain.LectureSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	day, ok := schedule.CanonicalWeekday(weekdaySymbol)
	if !ok {
		return nil, domain.ErrInvalidWeekday
	}
	if limit < 0 {
		limit = 0
	}
	if limit > domain.MaxTimetableLimit {
		limit = domain.MaxTimetableLimit
	}
	lectures, err := s.repo.ListByRoomAndDay(ctx, building, room, day, limit)
	if err != nil {
		return nil, fmt.Errorf("list room lectures: %w", err)
	}
	out := make([]*domain.LectureSummary, 0, len(lectures))
	for _, lec := range lectures {
		out = append(out, lec.Summary())
	}
	return out, nil
}

func (s *roomStatusService) Buildings(ctx context.Context) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	buildings, err := s.repo.DistinctBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	if buildings == nil {
		buildings = []int{}
	}
	return buildings, nil
}

func (s *roomStatusService) Floors(ctx context.Context, building int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.repo.DistinctRooms(ctx, building, "")
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	seen := make(map[string]struct{})
	floors := []string{}
	for _, room := range rooms {
		floor := status.ExtractFloor(room)
		if _, ok := seen[floor]; ok {
			continue
		}
		seen[floor] = struct{}{}
		floors = append(floors, floor)
	}
	sort.Slice(floors, func(i, j int) bool { return status.CompareFloors(floors[i], floors[j]) })
	return floors, nil
}
