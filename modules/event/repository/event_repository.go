package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/event/entity"
)

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, ev *entity.Event) (int64, error)
	Update(ctx context.Context, ev *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Event, error)
	ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]entity.Event, error)
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Event, error)
	AdminSearch(ctx context.Context, criteria entity.SearchCriteria) (*entity.EventPage, error)
	PublicSearch(ctx context.Context, criteria entity.SearchCriteria) (*entity.EventPage, error)
}

func (r *EventRepository) Create(ctx context.Context, ev *entity.Event) (int64, error) {
	query := `
		INSERT INTO events (
			annotation, description, title, category_id, initiator_id, location_id,
			event_date, created_on, published_on, paid, participant_limit,
			request_moderation, state
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	var id int64
	err := r.DB.GetContext(ctx, &id, query,
		ev.Annotation, ev.Description, ev.Title, ev.CategoryID, ev.InitiatorID, ev.LocationID,
		ev.EventDate.UTC(), ev.CreatedOn.UTC(), ev.PublishedOn, ev.Paid, ev.ParticipantLimit,
		ev.RequestModeration, ev.State,
	)
	if err != nil {
		logger.Error("EventRepository:Create", "initiator_id", ev.InitiatorID, "error", err)
		return 0, err
	}
	return id, nil
}

// Update writes every mutable column. The initiator and creation time are
// never changed.
func (r *EventRepository) Update(ctx context.Context, ev *entity.Event) error {
	query := `
		UPDATE events SET
			annotation = :annotation, description = :description, title = :title,
			category_id = :category_id, location_id = :location_id, event_date = :event_date,
			published_on = :published_on, paid = :paid, participant_limit = :participant_limit,
			request_moderation = :request_moderation, state = :state
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{
		"annotation":         ev.Annotation,
		"description":        ev.Description,
		"title":              ev.Title,
		"category_id":        ev.CategoryID,
		"location_id":        ev.LocationID,
		"event_date":         ev.EventDate.UTC(),
		"published_on":       ev.PublishedOn,
		"paid":               ev.Paid,
		"participant_limit":  ev.ParticipantLimit,
		"request_moderation": ev.RequestModeration,
		"state":              ev.State,
		"id":                 ev.ID,
	})
	if err != nil {
		logger.Error("EventRepository:Update", "id", ev.ID, "error", err)
	}
	return err
}

// GetByID returns nil, nil when the event does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	query, args, err := buildGetByIDQuery(id)
	if err != nil {
		return nil, err
	}

	var ev entity.Event
	if err := r.DB.GetContext(ctx, &ev, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &ev, nil
}

// GetByIDForUpdate locks the event row for the rest of the transaction in
// ctx, then loads it. It returns nil, nil when the event does not exist.
func (r *EventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Event, error) {
	query, args, err := buildLockQuery(id)
	if err != nil {
		return nil, err
	}

	var lockedID int64
	if err := r.DB.GetContext(ctx, &lockedID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByIDForUpdate", "id", id, "error", err)
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepository) ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]entity.Event, error) {
	query, args, err := buildListByInitiatorQuery(initiatorID, from, size)
	if err != nil {
		return nil, err
	}

	events := []entity.Event{}
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:ListByInitiator", "initiator_id", initiatorID, "error", err)
		return nil, err
	}
	return events, nil
}

// ListByIDs loads the events with the given ids ordered by id. Unknown ids are
// skipped.
func (r *EventRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Event, error) {
	events := []entity.Event{}
	if len(ids) == 0 {
		return events, nil
	}
	query, args, err := buildListByIDsQuery(ids)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:ListByIDs", "count", len(ids), "error", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) AdminSearch(ctx context.Context, criteria entity.SearchCriteria) (*entity.EventPage, error) {
	return r.search(ctx, "AdminSearch", criteria)
}

// PublicSearch only ever returns published events.
func (r *EventRepository) PublicSearch(ctx context.Context, criteria entity.SearchCriteria) (*entity.EventPage, error) {
	criteria.States = []entity.EventState{entity.StatePublished}
	criteria.Users = nil
	return r.search(ctx, "PublicSearch", criteria)
}

func (r *EventRepository) search(ctx context.Context, op string, criteria entity.SearchCriteria) (*entity.EventPage, error) {
	pageSQL, pageArgs, countSQL, countArgs, err := buildSearchQuery(criteria)
	if err != nil {
		logger.Error("EventRepository:"+op+":BuildQuery", "error", err)
		return nil, err
	}

	var total int64
	if err := r.DB.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		logger.Error("EventRepository:"+op+":Count", "error", err)
		return nil, err
	}

	items := []entity.Event{}
	if total > int64(criteria.From) {
		if err := r.DB.SelectContext(ctx, &items, pageSQL, pageArgs...); err != nil {
			logger.Error("EventRepository:"+op+":Select", "error", err)
			return nil, err
		}
	}
	return &entity.EventPage{Items: items, Total: total}, nil
}
