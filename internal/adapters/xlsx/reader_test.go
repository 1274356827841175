package xlsx

import (
	"path/filepath"
	"testing"

	"lectureroomfinder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook writes a single-sheet .xlsx from string rows and returns its path.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestCatalogReader_Read(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"과목번호-분반", "과목명", "담당교수", "폐강", "강의시간"},
		{"12345-01", "자료구조", "김교수", "", "월(10:30~11:45)/310관 727호"},
		{"23456-01", "알고리즘", "", "", "화0,1,2/303관 802호"},
		{"34567-01", "폐강과목", "이교수", "폐강", "수(09:00~10:15)/303관 802호"},
		{"", "", "", "", ""},
	})

	rows, cancelled, err := NewCatalogReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.CourseRow{
		CourseID:    "12345-01",
		CourseName:  "자료구조",
		Professor:   "김교수",
		RawSchedule: "월(10:30~11:45)/310관 727호",
	}, rows[0])
	assert.Equal(t, "23456-01", rows[1].CourseID)
	assert.Empty(t, rows[1].Professor)
}

func TestCatalogReader_Read_ColumnsLocatedByHeader(t *testing.T) {
	// Same columns in a different order, plus an extra column.
	path := writeWorkbook(t, [][]string{
		{"강의시간", "폐강", "담당교수", "학점", "과목명", "과목번호-분반"},
		{"월(10:30~11:45)/310관 727호", "", "김교수", "3", "자료구조", "12345-01"},
	})

	rows, cancelled, err := NewCatalogReader().Read(path)
	require.NoError(t, err)
	assert.Zero(t, cancelled)
	require.Len(t, rows, 1)
	assert.Equal(t, "12345-01", rows[0].CourseID)
	assert.Equal(t, "월(10:30~11:45)/310관 727호", rows[0].RawSchedule)
}

func TestCatalogReader_Read_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"과목번호-분반", "과목명", "담당교수", "폐강"},
		{"12345-01", "자료구조", "김교수", ""},
	})

	_, _, err := NewCatalogReader().Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "강의시간")
}

func TestCatalogReader_Read_MissingFile(t *testing.T) {
	_, _, err := NewCatalogReader().Read(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
