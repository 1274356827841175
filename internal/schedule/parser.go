package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ScheduleToken is one contiguous class block found in a raw schedule cell:
// a day symbol plus a start/end clock time, not yet bound to a room.
type ScheduleToken struct {
	Day   string // source-locale day symbol, e.g. "월"
	Start string // "HH:MM", zero-padded
	End   string // "HH:MM", zero-padded
}

// RoomReference is a building/room pair extracted from a room-shaped segment.
// One reference may be shared by several tokens when a raw cell declares a
// single room for multiple time blocks.
type RoomReference struct {
	Building string // digits only, e.g. "303"
	Room     string // digits with optional sub-unit, e.g. "802" or "802-1"
}

// ParseResult holds everything extracted from one raw schedule cell, in
// encounter order. Segments that matched no grammar rule are collected in
// Skipped so the caller can log them; they are never fatal.
type ParseResult struct {
	Tokens  []ScheduleToken
	Rooms   []RoomReference
	Skipped []string
}

// RoomFor returns the room associated with the i-th token. Policy: a single
// extracted reference is shared by every token; with several references the
// pairing is positional, and tokens beyond the reference count get nil (they
// are dropped downstream, since a record requires a room). Both branches are
// deliberate: the source data format genuinely means either, and the
// single-room case takes precedence.
func (r *ParseResult) RoomFor(i int) *RoomReference {
	if len(r.Rooms) == 1 {
		return &r.Rooms[0]
	}
	if i < len(r.Rooms) {
		return &r.Rooms[i]
	}
	return nil
}

const daySymbols = "월화수목금토일"

var (
	// A comma directly before a day symbol separates two expressions and is
	// rewritten to the segment delimiter before splitting, so that
	// "화0,1,2, 목0,1,2" splits into "화0,1,2" and "목0,1,2" instead of being
	// broken on the internal period-list commas.
	commaBeforeDayRe = regexp.MustCompile(`,\s*([` + daySymbols + `])`)

	parenTimeRe  = regexp.MustCompile(`^([` + daySymbols + `])\((\d{1,2}):(\d{1,2})~(\d{1,2}):(\d{1,2})\)$`)
	bareTimeRe   = regexp.MustCompile(`^([` + daySymbols + `])(\d{1,2}):(\d{1,2})~(\d{1,2}):(\d{1,2})$`)
	periodListRe = regexp.MustCompile(`^([` + daySymbols + `])(\d+(?:\s*,\s*\d+)*)$`)
	roomRe       = regexp.MustCompile(`(\d+)관.*?(\d+(?:-\d+)?)호`)
	bareRoomRe   = regexp.MustCompile(`^(\d+(?:-\d+)?)호$`)
)

// segmentRule is one grammar alternative for a delimited segment. apply
// reports whether the segment matched; the first matching rule wins.
type segmentRule struct {
	name  string
	apply func(seg string, res *ParseResult) bool
}

// segmentRules in precedence order. The order is part of the grammar: explicit
// times before period lists, rooms last.
var segmentRules = []segmentRule{
	{"paren-time", applyParenTime},
	{"bare-time", applyBareTime},
	{"period-list", applyPeriodList},
	{"room", applyRoom},
	{"partial-room", applyPartialRoom},
}

// Parse decomposes one raw schedule cell into tokens and room references.
// An empty or missing cell yields an empty result, not an error.
func Parse(raw string) ParseResult {
	var res ParseResult
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return res
	}
	normalized := commaBeforeDayRe.ReplaceAllString(raw, "/$1")
	for _, seg := range strings.Split(normalized, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		matched := false
		for _, rule := range segmentRules {
			if rule.apply(seg, &res) {
				matched = true
				break
			}
		}
		if !matched {
			res.Skipped = append(res.Skipped, seg)
		}
	}
	return res
}

// applyParenTime matches "월(10:30~11:45)".
func applyParenTime(seg string, res *ParseResult) bool {
	m := parenTimeRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	tok, ok := timeToken(m)
	if !ok {
		return false
	}
	res.Tokens = append(res.Tokens, tok)
	return true
}

// applyBareTime matches "월13:30~14:45" (no parentheses, hours may be a single
// digit; the token is normalized to two-digit form).
func applyBareTime(seg string, res *ParseResult) bool {
	m := bareTimeRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	tok, ok := timeToken(m)
	if !ok {
		return false
	}
	res.Tokens = append(res.Tokens, tok)
	return true
}

// timeToken builds a token from a day symbol and four captured clock fields.
func timeToken(m []string) (ScheduleToken, bool) {
	sh, _ := strconv.Atoi(m[2])
	sm, _ := strconv.Atoi(m[3])
	eh, _ := strconv.Atoi(m[4])
	em, _ := strconv.Atoi(m[5])
	if sh > 23 || eh > 23 || sm > 59 || em > 59 {
		return ScheduleToken{}, false
	}
	return ScheduleToken{
		Day:   m[1],
		Start: formatClock(sh, sm),
		End:   formatClock(eh, em),
	}, true
}

// applyPeriodList matches "화0,1,2" and converts the list to one token
// spanning from the start of the earliest period to the end of the latest.
// Periods need not be contiguous; the span covers any gaps.
func applyPeriodList(seg string, res *ParseResult) bool {
	m := periodListRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	min, max := -1, -1
	for _, p := range strings.Split(m[2], ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return false
		}
		if min == -1 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	start, _ := PeriodTimes(min)
	_, end := PeriodTimes(max)
	res.Tokens = append(res.Tokens, ScheduleToken{Day: m[1], Start: start, End: end})
	return true
}

// applyRoom matches a full room segment like "303관 802호" or "310관 802-1호"
// (building digits + building suffix, room digits + optional "-N" sub-unit +
// room suffix).
func applyRoom(seg string, res *ParseResult) bool {
	m := roomRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	res.Rooms = append(res.Rooms, RoomReference{Building: m[1], Room: m[2]})
	return true
}

// applyPartialRoom matches a room-only segment like "802호". It only applies
// when an earlier segment of the same cell already yielded a reference; the
// new reference inherits the most recently seen building.
func applyPartialRoom(seg string, res *ParseResult) bool {
	if len(res.Rooms) == 0 {
		return false
	}
	m := bareRoomRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	building := res.Rooms[len(res.Rooms)-1].Building
	res.Rooms = append(res.Rooms, RoomReference{Building: building, Room: m[1]})
	return true
}

// PeriodTimes maps a class period index to its clock-time range. Period 0 is
// the early slot 08:00~09:00; period N>=1 starts at (9+N-1):00 and runs one
// hour, so period 1 is 09:00~10:00.
func PeriodTimes(period int) (start, end string) {
	base := 8
	if period >= 1 {
		base = 9 + period - 1
	}
	return formatClock(base, 0), formatClock(base+1, 0)
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
