package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() SeatLayout {
	sides := []SeatSide{{Name: "왼쪽", Seats: 6}, {Name: "중앙", Seats: 12}, {Name: "오른쪽", Seats: 6}}
	return SeatLayout{Sections: []SeatSection{
		{Grade: "VIP", Floor: "1층", Block: "앞", Rows: 9, Sides: sides},
		{Grade: "R석", Floor: "1층", Block: "뒤", Rows: 8, Sides: sides},
		{Grade: "S석", Floor: "2층", Rows: 8, Sides: sides},
	}}
}

func TestSeatSectionSeatID(t *testing.T) {
	layout := testLayout()

	assert.Equal(t, "1층-앞-3줄-중앙-7번", layout.Sections[0].SeatID(3, "중앙", 7))
	assert.Equal(t, "2층-3줄-왼쪽-2번", layout.Sections[2].SeatID(3, "왼쪽", 2))
}

func TestSeatLayoutIndex(t *testing.T) {
	index := testLayout().Index()

	assert.Len(t, index, 216+192+192)
	assert.Equal(t, "VIP", index["1층-앞-1줄-중앙-1번"])
	assert.Equal(t, "R석", index["1층-뒤-8줄-오른쪽-6번"])
	assert.Equal(t, "S석", index["2층-1줄-중앙-12번"])

	_, ok := index["1층-앞-10줄-중앙-1번"]
	assert.False(t, ok, "row outside the front block must not resolve")
	_, ok = index["2층-앞-1줄-중앙-1번"]
	assert.False(t, ok, "second floor seats carry no block")
}

func TestNewShowComputesGradeTotals(t *testing.T) {
	show := NewShow(Show{
		ID:     "s1",
		Layout: testLayout(),
		SeatGrades: []SeatGrade{
			{Grade: "VIP", Floor: "1층"},
			{Grade: "R석", Floor: "1층"},
			{Grade: "S석", Floor: "2층"},
		},
	})

	require.Len(t, show.SeatGrades, 3)
	assert.Equal(t, 216, show.SeatGrades[0].TotalSeats)
	assert.Equal(t, 192, show.SeatGrades[1].TotalSeats)
	assert.Equal(t, 192, show.SeatGrades[2].TotalSeats)

	grade, ok := show.GradeOf("1층-앞-9줄-왼쪽-6번")
	assert.True(t, ok)
	assert.Equal(t, "VIP", grade)

	assert.True(t, show.HasGrade("R석"))
	assert.False(t, show.HasGrade("R"))
	assert.Equal(t, []string{"VIP", "R석", "S석"}, show.GradeNames())
}

func TestBookingPeriodContains(t *testing.T) {
	opens := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	period := &BookingPeriod{ShowID: "s1", OpensAt: opens, ClosesAt: opens.Add(48 * time.Hour)}

	assert.False(t, period.Contains(opens.Add(-time.Second)))
	assert.True(t, period.Contains(opens))
	assert.True(t, period.Contains(opens.Add(24*time.Hour)))
	assert.False(t, period.Contains(opens.Add(48*time.Hour)))
}
