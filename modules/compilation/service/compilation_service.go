package service

import (
	"context"

	"event-hub/core/constants"
	"event-hub/core/database"
	"event-hub/core/errors"
	"event-hub/core/logger"
	"event-hub/core/params"
	"event-hub/modules/compilation/dto"
	"event-hub/modules/compilation/entity"
	"event-hub/modules/compilation/mapper"
	"event-hub/modules/compilation/repository"
	eventdto "event-hub/modules/event/dto"
)

// EventSummaries resolves event ids into short events with views and
// confirmed participants.
type EventSummaries interface {
	Summaries(ctx context.Context, ids []int64, onlyPublished bool) ([]eventdto.EventShortResponse, *errors.AppError)
}

type CompilationServiceInterface interface {
	Create(ctx context.Context, req *dto.NewCompilationRequest) (*dto.CompilationResponse, *errors.AppError)
	Update(ctx context.Context, id int64, req *dto.UpdateCompilationRequest) (*dto.CompilationResponse, *errors.AppError)
	Delete(ctx context.Context, id int64) *errors.AppError
	GetByID(ctx context.Context, id int64) (*dto.CompilationResponse, *errors.AppError)
	List(ctx context.Context, pinned *bool, page params.QueryParams) ([]dto.CompilationResponse, *errors.AppError)
}

type CompilationService struct {
	repo   repository.CompilationRepositoryInterface
	events EventSummaries
	tx     database.Transactor
}

func NewCompilationService(repo repository.CompilationRepositoryInterface, events EventSummaries, tx database.Transactor) *CompilationService {
	return &CompilationService{repo: repo, events: events, tx: tx}
}

func (s *CompilationService) Create(ctx context.Context, req *dto.NewCompilationRequest) (*dto.CompilationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var created *entity.Compilation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, &entity.Compilation{Title: req.Title, Pinned: req.Pinned})
		if err != nil {
			return writeError(err, errors.ErrCreateFailed, "create compilation failed")
		}
		if err := s.repo.ReplaceEvents(ctx, created.ID, req.Events); err != nil {
			return writeError(err, errors.ErrCreateFailed, "create compilation failed")
		}
		return nil
	})
	if appErr := errors.FromError(err); appErr != nil {
		return nil, appErr
	}

	logger.Info("CompilationService:Create", "id", created.ID, "events", len(req.Events))
	return s.respond(ctx, created, req.Events, false)
}

func (s *CompilationService) Update(ctx context.Context, id int64, req *dto.UpdateCompilationRequest) (*dto.CompilationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var compilation *entity.Compilation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var appErr *errors.AppError
		if compilation, appErr = s.lookup(ctx, id); appErr != nil {
			return appErr
		}

		changed := false
		if req.Title != nil && *req.Title != compilation.Title {
			compilation.Title = *req.Title
			changed = true
		}
		if req.Pinned != nil && *req.Pinned != compilation.Pinned {
			compilation.Pinned = *req.Pinned
			changed = true
		}
		if changed {
			if err := s.repo.Update(ctx, compilation); err != nil {
				return writeError(err, errors.ErrUpdateFailed, "update compilation failed")
			}
		}
		if req.Events != nil {
			if err := s.repo.ReplaceEvents(ctx, id, *req.Events); err != nil {
				return writeError(err, errors.ErrUpdateFailed, "update compilation failed")
			}
		}
		return nil
	})
	if appErr := errors.FromError(err); appErr != nil {
		return nil, appErr
	}
	return s.respondLoaded(ctx, compilation, false)
}

func (s *CompilationService) Delete(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, appErr := s.lookup(ctx, id); appErr != nil {
			return appErr
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return errors.NewAppError(errors.ErrDeleteFailed, "delete compilation failed", err)
		}
		return nil
	})
	return errors.FromError(err)
}

// GetByID is the public read. Only published events are listed.
func (s *CompilationService) GetByID(ctx context.Context, id int64) (*dto.CompilationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	compilation, appErr := s.lookup(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return s.respondLoaded(ctx, compilation, true)
}

// List is the public listing, optionally filtered by pinned. The events of the
// whole page are resolved in one batch.
func (s *CompilationService) List(ctx context.Context, pinned *bool, page params.QueryParams) ([]dto.CompilationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	compilations, err := s.repo.List(ctx, pinned, page.From, page.Size)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get compilations failed", err)
	}

	ids := make([]int64, len(compilations))
	for i, c := range compilations {
		ids[i] = c.ID
	}
	links, err := s.repo.EventIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get compilation events failed", err)
	}

	var eventIDs []int64
	for _, id := range ids {
		eventIDs = append(eventIDs, links[id]...)
	}
	events, appErr := s.events.Summaries(ctx, dto.UniqueIDs(eventIDs), true)
	if appErr != nil {
		return nil, appErr
	}

	byID := mapper.IndexEvents(events)
	out := make([]dto.CompilationResponse, len(compilations))
	for i := range compilations {
		out[i] = *mapper.ToCompilationResponse(&compilations[i], links[compilations[i].ID], byID)
	}
	return out, nil
}

func (s *CompilationService) lookup(ctx context.Context, id int64) (*entity.Compilation, *errors.AppError) {
	compilation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get compilation failed", err)
	}
	if compilation == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "compilation not found", nil)
	}
	return compilation, nil
}

func (s *CompilationService) respondLoaded(ctx context.Context, c *entity.Compilation, onlyPublished bool) (*dto.CompilationResponse, *errors.AppError) {
	links, err := s.repo.EventIDs(ctx, []int64{c.ID})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get compilation events failed", err)
	}
	return s.respond(ctx, c, links[c.ID], onlyPublished)
}

func (s *CompilationService) respond(ctx context.Context, c *entity.Compilation, eventIDs []int64, onlyPublished bool) (*dto.CompilationResponse, *errors.AppError) {
	events, appErr := s.events.Summaries(ctx, eventIDs, onlyPublished)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToCompilationResponse(c, eventIDs, mapper.IndexEvents(events)), nil
}

// writeError maps constraint violations from a compilation write.
func writeError(err error, code errors.ErrorCode, message string) *errors.AppError {
	switch {
	case database.IsUniqueViolation(err):
		return errors.NewAppError(errors.ErrAlreadyExists, "compilation title already exists", err)
	case database.IsForeignKeyViolation(err):
		return errors.NewAppError(errors.ErrNotFound, "event not found", err)
	default:
		return errors.NewAppError(code, message, err)
	}
}
