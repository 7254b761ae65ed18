package response

import "arte-booking/internal/data/entity"

type SeatGradeResponse struct {
	Grade       string `json:"grade"`
	Description string `json:"description"`
	Floor       string `json:"floor"`
	TotalSeats  int    `json:"totalSeats"`
}

type CastMemberResponse struct {
	Role  string `json:"role"`
	Actor string `json:"actor"`
	Intro string `json:"intro"`
	Image string `json:"image,omitempty"`
}

type ShowSummaryResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Subtitle   string              `json:"subtitle"`
	Venue      string              `json:"venue"`
	Date       string              `json:"date"`
	Time       string              `json:"time"`
	SeatGrades []SeatGradeResponse `json:"seatGrades"`
}

type ShowResponse struct {
	ShowSummaryResponse
	Genre       string               `json:"genre"`
	Special     string               `json:"special"`
	Runtime     string               `json:"runtime"`
	AgeRating   string               `json:"ageRating"`
	PosterImage string               `json:"posterImage,omitempty"`
	Cast        []CastMemberResponse `json:"cast"`
	Synopsis    string               `json:"synopsis"`
	Highlights  []string             `json:"highlights"`
}

func ShowToSummary(s *entity.Show) ShowSummaryResponse {
	grades := make([]SeatGradeResponse, 0, len(s.SeatGrades))
	for _, g := range s.SeatGrades {
		grades = append(grades, SeatGradeResponse{
			Grade:       g.Grade,
			Description: g.Description,
			Floor:       g.Floor,
			TotalSeats:  g.TotalSeats,
		})
	}
	return ShowSummaryResponse{
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		Venue:      s.Venue,
		Date:       s.Date,
		Time:       s.Time,
		SeatGrades: grades,
	}
}

func ShowToResponse(s *entity.Show) ShowResponse {
	cast := make([]CastMemberResponse, 0, len(s.Cast))
	for _, c := range s.Cast {
		cast = append(cast, CastMemberResponse{Role: c.Role, Actor: c.Actor, Intro: c.Intro, Image: c.Image})
	}
	return ShowResponse{
		ShowSummaryResponse: ShowToSummary(s),
		Genre:               s.Genre,
		Special:             s.Special,
		Runtime:             s.Runtime,
		AgeRating:           s.AgeRating,
		PosterImage:         s.PosterImage,
		Cast:                cast,
		Synopsis:            s.Synopsis,
		Highlights:          s.Highlights,
	}
}
