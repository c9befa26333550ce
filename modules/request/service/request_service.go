package service

import (
	"context"
	"time"

	"event-hub/core/constants"
	"event-hub/core/database"
	"event-hub/core/errors"
	"event-hub/core/logger"
	evententity "event-hub/modules/event/entity"
	"event-hub/modules/request/dto"
	"event-hub/modules/request/entity"
	"event-hub/modules/request/mapper"
	"event-hub/modules/request/repository"
	userentity "event-hub/modules/user/entity"
)

// EventStore is the part of the event repository used for admission.
type EventStore interface {
	GetByID(ctx context.Context, id int64) (*evententity.Event, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*evententity.Event, error)
}

type UserLookup interface {
	Lookup(ctx context.Context, id int64) (*userentity.User, *errors.AppError)
}

type RequestService struct {
	repo   repository.RequestRepositoryInterface
	events EventStore
	users  UserLookup
	tx     database.Transactor
	now    func() time.Time
}

type RequestServiceInterface interface {
	Create(ctx context.Context, userID, eventID int64) (*dto.ParticipationRequestResponse, *errors.AppError)
	Cancel(ctx context.Context, userID, requestID int64) (*dto.ParticipationRequestResponse, *errors.AppError)
	ListByRequester(ctx context.Context, userID int64) ([]dto.ParticipationRequestResponse, *errors.AppError)
	ListForEvent(ctx context.Context, userID, eventID int64) ([]dto.ParticipationRequestResponse, *errors.AppError)
	UpdateStatuses(ctx context.Context, userID, eventID int64, req *dto.StatusUpdateRequest) (*dto.StatusUpdateResult, *errors.AppError)
}

func NewRequestService(repo repository.RequestRepositoryInterface, events EventStore, users UserLookup, tx database.Transactor, now func() time.Time) *RequestService {
	if now == nil {
		now = time.Now
	}
	return &RequestService{repo: repo, events: events, users: users, tx: tx, now: now}
}

func (s *RequestService) Create(ctx context.Context, userID, eventID int64) (*dto.ParticipationRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	var created *entity.ParticipationRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ev, err := s.events.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
		}

		active, err := s.repo.FindActive(ctx, eventID, userID)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get request failed", err)
		}
		if active != nil {
			return errors.NewAppError(errors.ErrAlreadyExists, "participation request already exists", nil)
		}
		if ev == nil {
			return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}

		confirmed, err := s.repo.CountByEventAndStatus(ctx, eventID, entity.StatusConfirmed)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "count confirmed requests failed", err)
		}
		if appErr := CheckAdmission(ev, userID, confirmed); appErr != nil {
			return appErr
		}

		created, err = s.repo.Create(ctx, &entity.ParticipationRequest{
			Created:     s.now().UTC(),
			EventID:     eventID,
			RequesterID: userID,
			Status:      DecideInitialStatus(ev),
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return errors.NewAppError(errors.ErrAlreadyExists, "participation request already exists", err)
			}
			return errors.NewAppError(errors.ErrCreateFailed, "create request failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	logger.Info("RequestService:Create:Created", "request_id", created.ID, "event_id", eventID, "status", created.Status)
	return mapper.ToRequestResponse(created), nil
}

// Cancel withdraws the caller's own request. Canceling twice is a no-op.
func (s *RequestService) Cancel(ctx context.Context, userID, requestID int64) (*dto.ParticipationRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get request failed", err)
	}
	if req == nil || req.RequesterID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "request not found", nil)
	}

	if req.Status != entity.StatusCanceled {
		if err := s.repo.UpdateStatus(ctx, req.ID, entity.StatusCanceled); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "cancel request failed", err)
		}
		req.Status = entity.StatusCanceled
	}
	return mapper.ToRequestResponse(req), nil
}

func (s *RequestService) ListByRequester(ctx context.Context, userID int64) ([]dto.ParticipationRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	requests, err := s.repo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get requests failed", err)
	}
	return mapper.ToRequestResponses(requests), nil
}

func (s *RequestService) ListForEvent(ctx context.Context, userID, eventID int64) ([]dto.ParticipationRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if ev == nil || ev.InitiatorID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	requests, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get requests failed", err)
	}
	return mapper.ToRequestResponses(requests), nil
}

// UpdateStatuses confirms or rejects pending requests of one event. When a
// confirm batch overflows the limit the decisions are committed and the
// result is returned together with ErrParticipantLimitReached.
func (s *RequestService) UpdateStatuses(ctx context.Context, userID, eventID int64, req *dto.StatusUpdateRequest) (*dto.StatusUpdateResult, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	status := entity.RequestStatus(req.Status)
	if status != entity.StatusConfirmed && status != entity.StatusRejected {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "status must be CONFIRMED or REJECTED", nil)
	}

	result := &dto.StatusUpdateResult{
		ConfirmedRequests: []dto.ParticipationRequestResponse{},
		RejectedRequests:  []dto.ParticipationRequestResponse{},
	}
	limitReached := false

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ev, err := s.events.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
		}
		if ev == nil || ev.InitiatorID != userID {
			return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}

		if !ev.RequestModeration || ev.ParticipantLimit == 0 || len(req.RequestIDs) == 0 {
			return nil
		}

		loaded, err := s.repo.GetByIDs(ctx, req.RequestIDs)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get requests failed", err)
		}
		requests, appErr := OrderByCaller(eventID, req.RequestIDs, loaded)
		if appErr != nil {
			return appErr
		}
		if appErr := EnsureAllPending(requests); appErr != nil {
			return appErr
		}

		var plan ConfirmationPlan
		if status == entity.StatusRejected {
			plan.Reject = requests
			for i := range plan.Reject {
				plan.Reject[i].Status = entity.StatusRejected
			}
		} else {
			confirmed, err := s.repo.CountByEventAndStatus(ctx, eventID, entity.StatusConfirmed)
			if err != nil {
				return errors.NewAppError(errors.ErrGetFailed, "count confirmed requests failed", err)
			}
			plan = PlanConfirmations(requests, ev.ParticipantLimit, confirmed)
		}

		if err := s.repo.UpdateStatuses(ctx, requestIDs(plan.Confirm), entity.StatusConfirmed); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "confirm requests failed", err)
		}
		if err := s.repo.UpdateStatuses(ctx, requestIDs(plan.Reject), entity.StatusRejected); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "reject requests failed", err)
		}

		result.ConfirmedRequests = mapper.ToRequestResponses(plan.Confirm)
		result.RejectedRequests = mapper.ToRequestResponses(plan.Reject)
		limitReached = plan.LimitReached
		return nil
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	if limitReached {
		logger.Warn("RequestService:UpdateStatuses:LimitReached",
			"event_id", eventID,
			"confirmed", len(result.ConfirmedRequests),
			"rejected", len(result.RejectedRequests),
		)
		return result, errors.NewAppError(errors.ErrParticipantLimitReached, limitReachedMessage, nil)
	}
	return result, nil
}
