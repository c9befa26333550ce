package service

import (
	"context"
	"time"

	"event-hub/core/constants"
	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/core/logger"
	"event-hub/core/params"
	"event-hub/modules/comment/dto"
	"event-hub/modules/comment/entity"
	"event-hub/modules/comment/mapper"
	"event-hub/modules/comment/repository"
	evententity "event-hub/modules/event/entity"
	userentity "event-hub/modules/user/entity"
)

type EventLookup interface {
	GetByID(ctx context.Context, id int64) (*evententity.Event, error)
}

type UserLookup interface {
	Lookup(ctx context.Context, id int64) (*userentity.User, *errors.AppError)
}

type CommentServiceInterface interface {
	Create(ctx context.Context, userID, eventID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError)
	UpdateOwn(ctx context.Context, userID, commentID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError)
	GetOwn(ctx context.Context, userID, commentID int64) (*dto.CommentResponse, *errors.AppError)
	ListOwn(ctx context.Context, userID int64, query dto.CommentListQuery, page params.QueryParams) ([]dto.CommentResponse, *errors.AppError)
	DeleteOwn(ctx context.Context, userID, commentID int64) *errors.AppError

	ListByEvent(ctx context.Context, eventID int64, page params.QueryParams) ([]dto.CommentResponse, *errors.AppError)
	Get(ctx context.Context, commentID int64) (*dto.CommentResponse, *errors.AppError)
	Update(ctx context.Context, commentID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError)
	Delete(ctx context.Context, commentID int64) *errors.AppError
}

type CommentService struct {
	repo   repository.CommentRepositoryInterface
	events EventLookup
	users  UserLookup
	now    func() time.Time
}

func NewCommentService(repo repository.CommentRepositoryInterface, events EventLookup, users UserLookup, now func() time.Time) *CommentService {
	if now == nil {
		now = time.Now
	}
	return &CommentService{repo: repo, events: events, users: users, now: now}
}

// Create adds a comment by userID to a published event.
func (s *CommentService) Create(ctx context.Context, userID, eventID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	author, appErr := s.users.Lookup(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	ev, appErr := s.event(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if !ev.IsPublished() {
		return nil, errors.NewAppError(errors.ErrConflict, "only published events can be commented", nil)
	}

	comment := &entity.Comment{
		Text:       req.Text,
		EventID:    eventID,
		AuthorID:   userID,
		AuthorName: author.Name,
		Created:    s.now().UTC().Truncate(time.Second),
	}
	id, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create comment failed", err)
	}
	comment.ID = id

	logger.Info("CommentService:Create", "id", id, "event_id", eventID, "author_id", userID)
	return mapper.ToCommentResponse(comment), nil
}

func (s *CommentService) UpdateOwn(ctx context.Context, userID, commentID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comment, appErr := s.owned(ctx, userID, commentID)
	if appErr != nil {
		return nil, appErr
	}
	return s.updateText(ctx, comment, req.Text)
}

func (s *CommentService) GetOwn(ctx context.Context, userID, commentID int64) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comment, appErr := s.owned(ctx, userID, commentID)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToCommentResponse(comment), nil
}

// ListOwn lists the author's comments oldest first, optionally bounded by
// creation time.
func (s *CommentService) ListOwn(ctx context.Context, userID int64, query dto.CommentListQuery, page params.QueryParams) ([]dto.CommentResponse, *errors.AppError) {
	filter := entity.CommentFilter{AuthorID: userID, From: page.From, Size: page.Size}
	var err error
	if filter.RangeStart, err = parseBound(query.RangeStart); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	if filter.RangeEnd, err = parseBound(query.RangeEnd); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	if filter.RangeStart != nil && filter.RangeEnd != nil && filter.RangeEnd.Before(*filter.RangeStart) {
		return nil, errors.NewAppError(errors.ErrInvalidRange, "range_end must not be before range_start", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}
	return s.list(ctx, filter)
}

func (s *CommentService) DeleteOwn(ctx context.Context, userID, commentID int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.owned(ctx, userID, commentID); appErr != nil {
		return appErr
	}
	return s.delete(ctx, commentID)
}

// ListByEvent is the moderation listing of one event's comments.
func (s *CommentService) ListByEvent(ctx context.Context, eventID int64, page params.QueryParams) ([]dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.event(ctx, eventID); appErr != nil {
		return nil, appErr
	}
	return s.list(ctx, entity.CommentFilter{EventID: eventID, From: page.From, Size: page.Size})
}

func (s *CommentService) Get(ctx context.Context, commentID int64) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comment, appErr := s.lookup(ctx, commentID)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToCommentResponse(comment), nil
}

func (s *CommentService) Update(ctx context.Context, commentID int64, req *dto.CommentRequest) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comment, appErr := s.lookup(ctx, commentID)
	if appErr != nil {
		return nil, appErr
	}
	return s.updateText(ctx, comment, req.Text)
}

func (s *CommentService) Delete(ctx context.Context, commentID int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.lookup(ctx, commentID); appErr != nil {
		return appErr
	}
	return s.delete(ctx, commentID)
}

func (s *CommentService) lookup(ctx context.Context, id int64) (*entity.Comment, *errors.AppError) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get comment failed", err)
	}
	if comment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "comment not found", nil)
	}
	return comment, nil
}

// owned hides comments of other authors behind not found.
func (s *CommentService) owned(ctx context.Context, userID, commentID int64) (*entity.Comment, *errors.AppError) {
	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}
	comment, appErr := s.lookup(ctx, commentID)
	if appErr != nil {
		return nil, appErr
	}
	if comment.AuthorID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "comment not found", nil)
	}
	return comment, nil
}

func (s *CommentService) event(ctx context.Context, id int64) (*evententity.Event, *errors.AppError) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return ev, nil
}

func (s *CommentService) updateText(ctx context.Context, comment *entity.Comment, text string) (*dto.CommentResponse, *errors.AppError) {
	if text != comment.Text {
		if err := s.repo.UpdateText(ctx, comment.ID, text); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "update comment failed", err)
		}
		comment.Text = text
	}
	return mapper.ToCommentResponse(comment), nil
}

func (s *CommentService) delete(ctx context.Context, id int64) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete comment failed", err)
	}
	logger.Info("CommentService:Delete", "id", id)
	return nil
}

func (s *CommentService) list(ctx context.Context, filter entity.CommentFilter) ([]dto.CommentResponse, *errors.AppError) {
	comments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get comments failed", err)
	}
	return mapper.ToCommentResponses(comments), nil
}

func parseBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := coredto.ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
