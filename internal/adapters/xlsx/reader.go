package xlsx

import (
	"fmt"
	"strings"

	"lectureroomfinder/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Source catalog column headers. The catalog is an export of the university
// course registry; column order varies between departments, so columns are
// located by header, not position.
const (
	headerCourseID  = "과목번호-분반"
	headerCourse    = "과목명"
	headerProfessor = "담당교수"
	headerCancelled = "폐강"
	headerSchedule  = "강의시간"
)

type catalogReader struct{}

// NewCatalogReader returns a CatalogReader over .xlsx course catalogs.
func NewCatalogReader() domain.CatalogReader {
	return &catalogReader{}
}

// Read loads the first sheet of the workbook at path. Rows whose cancelled
// column is non-empty are filtered out and counted; they never reach the
// parsing core.
func (c *catalogReader) Read(path string) ([]domain.CourseRow, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, 0, err
	}

	var out []domain.CourseRow
	cancelled := 0
	for _, row := range rows[1:] {
		if cell(row, cols.cancelled) != "" {
			cancelled++
			continue
		}
		courseRow := domain.CourseRow{
			CourseID:    cell(row, cols.courseID),
			CourseName:  cell(row, cols.course),
			Professor:   cell(row, cols.professor),
			RawSchedule: cell(row, cols.schedule),
		}
		if courseRow.CourseID == "" && courseRow.CourseName == "" {
			continue
		}
		out = append(out, courseRow)
	}
	return out, cancelled, nil
}

type columnIndexes struct {
	courseID  int
	course    int
	professor int
	cancelled int
	schedule  int
}

func locateColumns(header []string) (columnIndexes, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	cols := columnIndexes{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{headerCourseID, &cols.courseID},
		{headerCourse, &cols.course},
		{headerProfessor, &cols.professor},
		{headerCancelled, &cols.cancelled},
		{headerSchedule, &cols.schedule},
	} {
		i, ok := idx[want.name]
		if !ok {
			return columnIndexes{}, fmt.Errorf("catalog is missing column %q", want.name)
		}
		*want.dst = i
	}
	return cols, nil
}

// cell returns the trimmed cell at column i; short rows read as empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
