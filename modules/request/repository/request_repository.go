package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/request/entity"

	"github.com/jmoiron/sqlx"
)

const requestColumns = `id, created, event_id, requester_id, status`

type RequestRepository struct {
	DB database.IDatabase
}

func NewRequestRepository(db database.IDatabase) *RequestRepository {
	return &RequestRepository{DB: db}
}

type RequestRepositoryInterface interface {
	Create(ctx context.Context, req *entity.ParticipationRequest) (*entity.ParticipationRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) error
	UpdateStatuses(ctx context.Context, ids []int64, status entity.RequestStatus) error
	GetByID(ctx context.Context, id int64) (*entity.ParticipationRequest, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]entity.ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]entity.ParticipationRequest, error)
	CountByEventAndStatus(ctx context.Context, eventID int64, status entity.RequestStatus) (int64, error)
	FindActive(ctx context.Context, eventID, requesterID int64) (*entity.ParticipationRequest, error)
}

func (r *RequestRepository) Create(ctx context.Context, req *entity.ParticipationRequest) (*entity.ParticipationRequest, error) {
	query := `
		INSERT INTO requests (created, event_id, requester_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + requestColumns

	var created entity.ParticipationRequest
	err := r.DB.GetContext(ctx, &created, query, req.Created.UTC(), req.EventID, req.RequesterID, req.Status)
	if err != nil {
		if !database.IsUniqueViolation(err) {
			logger.Error("RequestRepository:Create", "event_id", req.EventID, "requester_id", req.RequesterID, "error", err)
		}
		return nil, err
	}
	return &created, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) error {
	if err := r.DB.ExecContext(ctx, `UPDATE requests SET status = $1 WHERE id = $2`, status, id); err != nil {
		logger.Error("RequestRepository:UpdateStatus", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *RequestRepository) UpdateStatuses(ctx context.Context, ids []int64, status entity.RequestStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE requests SET status = ? WHERE id IN (?)`, status, ids)
	if err != nil {
		return err
	}
	if err := r.DB.ExecContext(ctx, r.DB.Rebind(query), args...); err != nil {
		logger.Error("RequestRepository:UpdateStatuses", "count", len(ids), "status", status, "error", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when the request does not exist.
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*entity.ParticipationRequest, error) {
	var req entity.ParticipationRequest
	err := r.DB.GetContext(ctx, &req, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("RequestRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &req, nil
}

// GetByIDs loads the requests that exist among ids, in id order.
func (r *RequestRepository) GetByIDs(ctx context.Context, ids []int64) ([]entity.ParticipationRequest, error) {
	requests := []entity.ParticipationRequest{}
	if len(ids) == 0 {
		return requests, nil
	}

	query, args, err := sqlx.In(`SELECT `+requestColumns+` FROM requests WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &requests, r.DB.Rebind(query), args...); err != nil {
		logger.Error("RequestRepository:GetByIDs", "count", len(ids), "error", err)
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID int64) ([]entity.ParticipationRequest, error) {
	requests := []entity.ParticipationRequest{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE event_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &requests, query, eventID); err != nil {
		logger.Error("RequestRepository:ListByEvent", "event_id", eventID, "error", err)
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]entity.ParticipationRequest, error) {
	requests := []entity.ParticipationRequest{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE requester_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &requests, query, requesterID); err != nil {
		logger.Error("RequestRepository:ListByRequester", "requester_id", requesterID, "error", err)
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) CountByEventAndStatus(ctx context.Context, eventID int64, status entity.RequestStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`
	if err := r.DB.GetContext(ctx, &count, query, eventID, status); err != nil {
		logger.Error("RequestRepository:CountByEventAndStatus", "event_id", eventID, "status", status, "error", err)
		return 0, err
	}
	return count, nil
}

// FindActive returns the non-canceled request of requesterID for eventID,
// or nil, nil when there is none.
func (r *RequestRepository) FindActive(ctx context.Context, eventID, requesterID int64) (*entity.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE event_id = $1 AND requester_id = $2 AND status <> $3
		LIMIT 1`

	var req entity.ParticipationRequest
	if err := r.DB.GetContext(ctx, &req, query, eventID, requesterID, entity.StatusCanceled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("RequestRepository:FindActive", "event_id", eventID, "requester_id", requesterID, "error", err)
		return nil, err
	}
	return &req, nil
}
