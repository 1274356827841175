package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lectureroomfinder/internal/domain"
)

// NormalizeResult is the outcome of normalizing a batch of catalog rows.
// Warnings are row-scoped failures (unmapped weekday, non-numeric building);
// the rest of the batch is unaffected by them.
type NormalizeResult struct {
	Records       []*domain.LectureRecord
	Duplicates    int
	DroppedTokens int
	Warnings      []string
}

// NormalizeRows parses each row's raw schedule cell and turns the resulting
// (token, room) pairs into canonical lecture records. Deduplication applies
// across the whole batch: a later record with an identical uniqueness key is
// discarded, first occurrence wins.
func NormalizeRows(rows []domain.CourseRow) NormalizeResult {
	var res NormalizeResult
	seen := make(map[domain.LectureKey]struct{})

	for _, row := range rows {
		parsed := Parse(row.RawSchedule)
		for _, seg := range parsed.Skipped {
			res.Warnings = append(res.Warnings, fmt.Sprintf("course %s: unrecognized schedule segment %q", row.CourseID, seg))
		}

		records, dropped, err := normalizeRow(row, &parsed)
		res.DroppedTokens += dropped
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("course %s: %v", row.CourseID, err))
			continue
		}
		for _, rec := range records {
			if _, dup := seen[rec.Key()]; dup {
				res.Duplicates++
				continue
			}
			seen[rec.Key()] = struct{}{}
			res.Records = append(res.Records, rec)
		}
	}
	return res
}

// normalizeRow builds the records of one catalog row. A weekday or building
// failure is fatal for the whole row; a token without an associated room only
// drops that token.
func normalizeRow(row domain.CourseRow, parsed *ParseResult) ([]*domain.LectureRecord, int, error) {
	professor := strings.TrimSpace(row.Professor)
	if professor == "" {
		professor = domain.ProfessorUnassigned
	}

	var records []*domain.LectureRecord
	dropped := 0
	for i, tok := range parsed.Tokens {
		room := parsed.RoomFor(i)
		if room == nil || room.Building == "" || room.Room == "" {
			dropped++
			continue
		}
		day, ok := CanonicalWeekday(tok.Day)
		if !ok {
			return nil, dropped, fmt.Errorf("unmapped weekday symbol %q", tok.Day)
		}
		building, err := strconv.Atoi(room.Building)
		if err != nil {
			return nil, dropped, fmt.Errorf("non-numeric building %q", room.Building)
		}
		records = append(records, &domain.LectureRecord{
			Building:   building,
			Room:       room.Room,
			Day:        day,
			StartTime:  tok.Start,
			EndTime:    tok.End,
			CourseID:   strings.TrimSpace(row.CourseID),
			CourseName: strings.TrimSpace(row.CourseName),
			Professor:  professor,
		})
	}
	return records, dropped, nil
}

// Buildings returns the distinct building identifiers of a record batch,
// ascending. The ingestion pipeline replaces exactly these buildings.
func Buildings(records []*domain.LectureRecord) []int {
	set := make(map[int]struct{})
	for _, rec := range records {
		set[rec.Building] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}
