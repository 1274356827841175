package status

import (
	"testing"

	"lectureroomfinder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureLectures() []*domain.LectureRecord {
	return []*domain.LectureRecord{
		{Building: 310, Room: "727", Day: domain.Monday, StartTime: "10:00", EndTime: "11:15", CourseName: "자료구조", Professor: "김교수"},
		{Building: 310, Room: "727", Day: domain.Monday, StartTime: "13:30", EndTime: "14:45", CourseName: "알고리즘", Professor: "이교수"},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		now          string
		wantStatus   string
		wantMinutes  int
		wantMessage  string
		wantCurrent  string
		wantNext     string
		wantUpcoming int
	}{
		{
			name:         "an hour before first lecture",
			now:          "09:00",
			wantStatus:   domain.StatusSoon,
			wantMinutes:  60,
			wantMessage:  "1시간 후 다음 수업이 시작됩니다",
			wantNext:     "자료구조",
			wantUpcoming: 2,
		},
		{
			name:         "fifteen minutes before",
			now:          "09:45",
			wantStatus:   domain.StatusSoon,
			wantMinutes:  15,
			wantMessage:  "15분 후 다음 수업이 시작됩니다",
			wantNext:     "자료구조",
			wantUpcoming: 2,
		},
		{
			name:         "start time is inclusive",
			now:          "10:00",
			wantStatus:   domain.StatusInUse,
			wantMinutes:  0,
			wantCurrent:  "자료구조",
			wantNext:     "알고리즘",
			wantUpcoming: 1,
		},
		{
			name:         "mid lecture",
			now:          "10:30",
			wantStatus:   domain.StatusInUse,
			wantMinutes:  0,
			wantCurrent:  "자료구조",
			wantNext:     "알고리즘",
			wantUpcoming: 1,
		},
		{
			name:         "end time is exclusive, gap over an hour",
			now:          "11:15",
			wantStatus:   domain.StatusEmpty,
			wantMinutes:  135,
			wantMessage:  "2시간 15분 후 다음 수업이 시작됩니다",
			wantNext:     "알고리즘",
			wantUpcoming: 1,
		},
		{
			name:         "after last lecture",
			now:          "15:00",
			wantStatus:   domain.StatusEmpty,
			wantMinutes:  NoMoreLecturesMinutes,
			wantUpcoming: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.now, fixtureLectures())
			assert.Equal(t, tt.wantStatus, c.Status)
			assert.Equal(t, tt.wantMinutes, c.AvailableMinutes)
			if tt.wantMessage == "" {
				assert.Nil(t, c.SoonMessage)
			} else {
				require.NotNil(t, c.SoonMessage)
				assert.Equal(t, tt.wantMessage, *c.SoonMessage)
			}
			if tt.wantCurrent == "" {
				assert.Nil(t, c.Current)
			} else {
				require.NotNil(t, c.Current)
				assert.Equal(t, tt.wantCurrent, c.Current.CourseName)
			}
			if tt.wantNext == "" {
				assert.Nil(t, c.Next)
			} else {
				require.NotNil(t, c.Next)
				assert.Equal(t, tt.wantNext, c.Next.CourseName)
			}
			assert.Len(t, c.Upcoming, tt.wantUpcoming)
		})
	}
}

func TestClassify_NoLectures(t *testing.T) {
	c := Classify("10:00", nil)
	assert.Equal(t, domain.StatusEmpty, c.Status)
	assert.Equal(t, NoMoreLecturesMinutes, c.AvailableMinutes)
	assert.Nil(t, c.Current)
	assert.Nil(t, c.Next)
	assert.NotNil(t, c.Upcoming)
	assert.Empty(t, c.Upcoming)
	assert.Nil(t, c.SoonMessage)
}

func TestClassify_OverlappingCurrentEarliestWins(t *testing.T) {
	lectures := []*domain.LectureRecord{
		{StartTime: "10:00", EndTime: "12:00", CourseName: "늦게 시작"},
		{StartTime: "09:00", EndTime: "11:00", CourseName: "먼저 시작"},
	}
	c := Classify("10:30", lectures)
	assert.Equal(t, domain.StatusInUse, c.Status)
	require.NotNil(t, c.Current)
	assert.Equal(t, "먼저 시작", c.Current.CourseName)
}

func TestClassify_UpcomingSortedByStart(t *testing.T) {
	lectures := []*domain.LectureRecord{
		{StartTime: "15:00", EndTime: "16:00", CourseName: "C"},
		{StartTime: "11:00", EndTime: "12:00", CourseName: "A"},
		{StartTime: "13:00", EndTime: "14:00", CourseName: "B"},
	}
	c := Classify("10:00", lectures)
	require.Len(t, c.Upcoming, 3)
	assert.Equal(t, "A", c.Upcoming[0].CourseName)
	assert.Equal(t, "B", c.Upcoming[1].CourseName)
	assert.Equal(t, "C", c.Upcoming[2].CourseName)
	assert.Equal(t, c.Upcoming[0], c.Next)
}

func TestClassify_SoonBoundary(t *testing.T) {
	lectures := []*domain.LectureRecord{
		{StartTime: "11:00", EndTime: "12:00", CourseName: "A"},
	}
	// Exactly at the threshold counts as soon.
	atThreshold := Classify("10:00", lectures)
	assert.Equal(t, domain.StatusSoon, atThreshold.Status)

	justOver := Classify("09:59", lectures)
	assert.Equal(t, domain.StatusEmpty, justOver.Status)
	assert.Equal(t, 61, justOver.AvailableMinutes)
	require.NotNil(t, justOver.SoonMessage)
	assert.Equal(t, "1시간 1분 후 다음 수업이 시작됩니다", *justOver.SoonMessage)
}
