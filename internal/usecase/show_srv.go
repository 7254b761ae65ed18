package usecase

import (
	"context"
	"fmt"

	"arte-booking/internal/data/repository"
	"arte-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ShowService interface {
	GetShows(ctx context.Context) ([]response.ShowSummaryResponse, error)
	GetShowByID(ctx context.Context, showID string) (*response.ShowResponse, error)
}

type showService struct {
	repo repository.ShowRepository
	log  *zap.Logger
}

func NewShowService(repo repository.ShowRepository, log *zap.Logger) ShowService {
	return &showService{
		repo: repo,
		log:  log.With(zap.String("service", "show")),
	}
}

func (s *showService) GetShows(ctx context.Context) ([]response.ShowSummaryResponse, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find shows: %w", err)
	}

	out := make([]response.ShowSummaryResponse, 0, len(shows))
	for _, show := range shows {
		out = append(out, response.ShowToSummary(show))
	}
	return out, nil
}

func (s *showService) GetShowByID(ctx context.Context, showID string) (*response.ShowResponse, error) {
	show, err := s.repo.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", showID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	resp := response.ShowToResponse(show)
	return &resp, nil
}
