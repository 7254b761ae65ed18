package entity

import "fmt"

// SeatSide is a horizontal block of one row.
type SeatSide struct {
	Name  string // 왼쪽, 중앙, 오른쪽
	Seats int
}

// SeatSection is a run of rows sharing one grade.
type SeatSection struct {
	Grade string
	Floor string // 1층, 2층
	Block string // 앞, 뒤; empty when the floor has a single block
	Rows  int
	Sides []SeatSide
}

type SeatLayout struct {
	Sections []SeatSection
}

// SeatID formats an identifier such as "1층-앞-3줄-중앙-7번" or
// "2층-3줄-왼쪽-2번".
func (sec SeatSection) SeatID(row int, side string, number int) string {
	if sec.Block == "" {
		return fmt.Sprintf("%s-%d줄-%s-%d번", sec.Floor, row, side, number)
	}
	return fmt.Sprintf("%s-%s-%d줄-%s-%d번", sec.Floor, sec.Block, row, side, number)
}

// SeatIDs lists every seat of the section in row-major order.
func (sec SeatSection) SeatIDs() []string {
	var ids []string
	for row := 1; row <= sec.Rows; row++ {
		for _, side := range sec.Sides {
			for n := 1; n <= side.Seats; n++ {
				ids = append(ids, sec.SeatID(row, side.Name, n))
			}
		}
	}
	return ids
}

// Index maps every seat id to its grade.
func (l SeatLayout) Index() map[string]string {
	index := make(map[string]string)
	for _, sec := range l.Sections {
		for _, id := range sec.SeatIDs() {
			index[id] = sec.Grade
		}
	}
	return index
}
