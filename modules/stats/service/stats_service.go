package service

import (
	"context"
	"time"

	"event-hub/core/constants"
	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/modules/stats/dto"
	"event-hub/modules/stats/entity"
	"event-hub/modules/stats/repository"
)

type StatsService struct {
	repo repository.HitRepositoryInterface
}

type StatsServiceInterface interface {
	RecordHit(ctx context.Context, req *dto.EndpointHit) (*dto.EndpointHit, *errors.AppError)
	GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, *errors.AppError)
}

func NewStatsService(repo repository.HitRepositoryInterface) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) RecordHit(ctx context.Context, req *dto.EndpointHit) (*dto.EndpointHit, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, &entity.Hit{
		App:       req.App,
		URI:       req.URI,
		IP:        req.IP,
		Timestamp: req.Timestamp.Time,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "save hit failed", err)
	}

	return &dto.EndpointHit{
		ID:        created.ID,
		App:       created.App,
		URI:       created.URI,
		IP:        created.IP,
		Timestamp: coredto.NewDateTime(created.Timestamp),
	}, nil
}

func (s *StatsService) GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, *errors.AppError) {
	if end.Before(start) {
		return nil, errors.NewAppError(errors.ErrInvalidRange, "end must not be before start", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	stats, err := s.repo.Stats(ctx, start, end, uris, unique)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get stats failed", err)
	}

	out := make([]dto.ViewStats, len(stats))
	for i, st := range stats {
		out[i] = dto.ViewStats{App: st.App, URI: st.URI, Hits: st.Hits}
	}
	return out, nil
}
