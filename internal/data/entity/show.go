package entity

// SeatGrade is one price/location class of a show.
type SeatGrade struct {
	Grade       string
	Description string
	Floor       string
	TotalSeats  int
}

type CastMember struct {
	Role  string
	Actor string
	Intro string
	Image string
}

// Show is static catalog data; nothing mutates it after startup.
type Show struct {
	ID          string
	Title       string
	Subtitle    string
	Genre       string
	Special     string
	Runtime     string
	AgeRating   string
	Venue       string
	Date        string
	Time        string
	PosterImage string
	Cast        []CastMember
	Synopsis    string
	Highlights  []string
	SeatGrades  []SeatGrade
	Layout      SeatLayout

	seatIndex map[string]string
}

// NewShow fills in per-grade seat totals and builds the seat→grade index.
func NewShow(show Show) *Show {
	s := show
	s.seatIndex = s.Layout.Index()

	totals := make(map[string]int)
	for _, grade := range s.seatIndex {
		totals[grade]++
	}

	s.SeatGrades = make([]SeatGrade, len(show.SeatGrades))
	for i, g := range show.SeatGrades {
		g.TotalSeats = totals[g.Grade]
		s.SeatGrades[i] = g
	}

	return &s
}

// GradeOf returns the grade a seat belongs to.
func (s *Show) GradeOf(seatID string) (string, bool) {
	grade, ok := s.seatIndex[seatID]
	return grade, ok
}

func (s *Show) HasGrade(grade string) bool {
	for _, g := range s.SeatGrades {
		if g.Grade == grade {
			return true
		}
	}
	return false
}

func (s *Show) GradeNames() []string {
	names := make([]string, len(s.SeatGrades))
	for i, g := range s.SeatGrades {
		names[i] = g.Grade
	}
	return names
}
