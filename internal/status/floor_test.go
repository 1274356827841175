package status

import (
	"testing"

	"lectureroomfinder/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtractFloor(t *testing.T) {
	tests := []struct {
		room string
		want string
	}{
		{"414", "4"},
		{"1201", "12"},
		{"B106", "B1"},
		{"B12", "B1"},
		{"10", "10"},
		{"7", "7"},
		{"802-1", "8"},
		{"강당", "?"},
		{"", "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractFloor(tt.room), "room=%q", tt.room)
	}
}

func TestCompareFloors(t *testing.T) {
	// Basements first by increasing depth, then floors ascending, unknown last.
	ordered := []string{"B1", "B2", "1", "2", "10", "?"}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			assert.True(t, CompareFloors(ordered[i], ordered[j]), "%s before %s", ordered[i], ordered[j])
			assert.False(t, CompareFloors(ordered[j], ordered[i]), "%s not before %s", ordered[j], ordered[i])
		}
	}
}

func TestSortRoomStatuses(t *testing.T) {
	list := []*domain.RoomStatus{
		{Floor: "2", RoomNumber: "204"},
		{Floor: "?", RoomNumber: "강당"},
		{Floor: "B1", RoomNumber: "B106"},
		{Floor: "2", RoomNumber: "201"},
		{Floor: "10", RoomNumber: "1004"},
		{Floor: "1", RoomNumber: "104"},
	}
	SortRoomStatuses(list)

	var rooms []string
	for _, s := range list {
		rooms = append(rooms, s.RoomNumber)
	}
	assert.Equal(t, []string{"B106", "104", "201", "204", "1004", "강당"}, rooms)
}
