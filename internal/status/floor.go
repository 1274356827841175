package status

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lectureroomfinder/internal/domain"
)

// UnknownFloor is the label for room numbers no floor can be derived from.
const UnknownFloor = "?"

var floorPrefixRe = regexp.MustCompile(`^B?\d+`)

// ExtractFloor derives a floor label from a room number string. A basement
// room keeps the marker plus its first digit ("B106" -> "B1"); otherwise the
// last two digits are the room-on-floor part, so "414" -> "4" and "1201" ->
// "12". Room numbers of one or two digits are their own floor.
func ExtractFloor(room string) string {
	prefix := floorPrefixRe.FindString(room)
	if prefix == "" {
		return UnknownFloor
	}
	if strings.HasPrefix(prefix, "B") {
		return prefix[:2]
	}
	if len(prefix) <= 2 {
		return prefix
	}
	return prefix[:len(prefix)-2]
}

// floorRank orders floor labels: basements first by increasing depth, then
// above-ground floors ascending, unknown labels last.
func floorRank(floor string) (category, number int) {
	if strings.HasPrefix(floor, "B") {
		if n, err := strconv.Atoi(floor[1:]); err == nil {
			return 0, n
		}
		return 2, 0
	}
	if n, err := strconv.Atoi(floor); err == nil {
		return 1, n
	}
	return 2, 0
}

// CompareFloors reports whether floor a sorts before floor b.
func CompareFloors(a, b string) bool {
	ca, na := floorRank(a)
	cb, nb := floorRank(b)
	if ca != cb {
		return ca < cb
	}
	if na != nb {
		return na < nb
	}
	return a < b
}

// SortRoomStatuses orders a status list by floor (basements first, then
// ascending floors, unknown last), ties broken by room number string.
func SortRoomStatuses(list []*domain.RoomStatus) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Floor != list[j].Floor {
			return CompareFloors(list[i].Floor, list[j].Floor)
		}
		return list[i].RoomNumber < list[j].RoomNumber
	})
}
