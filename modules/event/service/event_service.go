package service

import (
	"context"
	"sort"
	"time"

	"event-hub/core/config"
	"event-hub/core/constants"
	"event-hub/core/database"
	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/core/logger"
	"event-hub/core/params"
	categoryentity "event-hub/modules/category/entity"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/entity"
	"event-hub/modules/event/mapper"
	"event-hub/modules/event/repository"
	statsclient "event-hub/modules/stats/client"
	userentity "event-hub/modules/user/entity"
)

type CategoryLookup interface {
	Lookup(ctx context.Context, id int64) (*categoryentity.Category, *errors.AppError)
}

type UserLookup interface {
	Lookup(ctx context.Context, id int64) (*userentity.User, *errors.AppError)
}

// HitSource identifies the client of a public read.
type HitSource struct {
	IP string
}

type AdminEventService interface {
	Search(ctx context.Context, query dto.EventSearchQuery) (*coredto.Pagination[dto.EventFullResponse], *errors.AppError)
	Update(ctx context.Context, eventID int64, req *dto.UpdateEventAdminRequest) (*dto.EventFullResponse, *errors.AppError)
}

type PrivateEventService interface {
	Create(ctx context.Context, userID int64, req *dto.NewEventRequest) (*dto.EventFullResponse, *errors.AppError)
	ListByInitiator(ctx context.Context, userID int64, page params.QueryParams) ([]dto.EventShortResponse, *errors.AppError)
	Get(ctx context.Context, userID, eventID int64) (*dto.EventFullResponse, *errors.AppError)
	Update(ctx context.Context, userID, eventID int64, req *dto.UpdateEventUserRequest) (*dto.EventFullResponse, *errors.AppError)
}

type PublicEventService interface {
	Search(ctx context.Context, query dto.EventSearchQuery, client HitSource) (*coredto.Pagination[dto.EventShortResponse], *errors.AppError)
	Get(ctx context.Context, eventID int64, client HitSource) (*dto.EventFullResponse, *errors.AppError)
}

type Dependencies struct {
	Events     repository.EventRepositoryInterface
	Locations  repository.LocationRepositoryInterface
	Categories CategoryLookup
	Users      UserLookup
	Tx         database.Transactor
	Views      *ViewCounter
	Hits       statsclient.HitRecorder
	Config     config.EventConfig
	Now        func() time.Time
}

// eventCore holds what the admin, private and public services share.
type eventCore struct {
	events     repository.EventRepositoryInterface
	locations  repository.LocationRepositoryInterface
	categories CategoryLookup
	users      UserLookup
	tx         database.Transactor
	views      *ViewCounter
	hits       statsclient.HitRecorder
	criteria   *CriteriaBuilder
	cfg        config.EventConfig
	now        func() time.Time
}

type AdminService struct{ *eventCore }
type PrivateService struct{ *eventCore }
type PublicService struct{ *eventCore }

func NewEventServices(deps Dependencies) (*AdminService, *PrivateService, *PublicService) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	core := &eventCore{
		events:     deps.Events,
		locations:  deps.Locations,
		categories: deps.Categories,
		users:      deps.Users,
		tx:         deps.Tx,
		views:      deps.Views,
		hits:       deps.Hits,
		criteria:   NewCriteriaBuilder(now),
		cfg:        deps.Config,
		now:        now,
	}
	return &AdminService{core}, &PrivateService{core}, &PublicService{core}
}

func (s *eventCore) ResolveCategory(ctx context.Context, id int64) (string, *errors.AppError) {
	category, appErr := s.categories.Lookup(ctx, id)
	if appErr != nil {
		return "", appErr
	}
	return category.Name, nil
}

func (s *eventCore) ResolveLocation(ctx context.Context, lat, lon float64) (*entity.Location, *errors.AppError) {
	loc, err := s.locations.GetOrCreate(ctx, lat, lon)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "resolve location failed", err)
	}
	return loc, nil
}

func (s *eventCore) load(ctx context.Context, id int64) (*entity.Event, *errors.AppError) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return ev, nil
}

func (s *eventCore) lock(ctx context.Context, id int64) (*entity.Event, *errors.AppError) {
	ev, err := s.events.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return ev, nil
}

// checkDates runs the lead time checks that precede any change: the
// current date against the edit lead time, a new date against the publish
// lead time.
func (s *eventCore) checkDates(ev *entity.Event, patch dto.UpdateEventFields, now time.Time) *errors.AppError {
	if appErr := CheckLeadTime(ev.EventDate, now, s.cfg.EditLeadTime); appErr != nil {
		return appErr
	}
	if date := newEventDate(patch); date != nil {
		return CheckLeadTime(*date, now, s.cfg.PublishLeadTime)
	}
	return nil
}

// reloadWithViews re-reads the event after a write and attaches its views.
func (s *eventCore) reloadWithViews(ctx context.Context, id int64) (*dto.EventFullResponse, *errors.AppError) {
	ev, appErr := s.load(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	ev.Views = s.views.ForEvent(ctx, ev)
	return mapper.ToEventFullResponse(ev), nil
}

func (s *eventCore) attachViews(ctx context.Context, events []entity.Event) {
	views := s.views.ForEvents(ctx, events)
	for i := range events {
		events[i].Views = views[events[i].ID]
	}
}

// sortEvents orders a page after views are known. Ties break by id, newest first.
func sortEvents(events []entity.Event, mode entity.SortMode) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		switch mode {
		case entity.SortViews:
			if a.Views != b.Views {
				return a.Views > b.Views
			}
		default:
			if !a.EventDate.Equal(b.EventDate) {
				return a.EventDate.After(b.EventDate)
			}
		}
		return a.ID > b.ID
	})
}

func (s *AdminService) Search(ctx context.Context, query dto.EventSearchQuery) (*coredto.Pagination[dto.EventFullResponse], *errors.AppError) {
	criteria, appErr := s.criteria.Build(AdminSearchMode, query)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.events.AdminSearch(ctx, criteria)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "search events failed", err)
	}

	s.attachViews(ctx, page.Items)
	sortEvents(page.Items, criteria.Sort)

	return coredto.NewPagination(mapper.ToEventFullResponses(page.Items), page.Total, criteria.From, criteria.Size), nil
}

func (s *AdminService) Update(ctx context.Context, eventID int64, req *dto.UpdateEventAdminRequest) (*dto.EventFullResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ev, appErr := s.lock(ctx, eventID)
		if appErr != nil {
			return appErr
		}

		now := s.now().UTC()
		if appErr := s.checkDates(ev, req.UpdateEventFields, now); appErr != nil {
			return appErr
		}
		if req.StateAction == nil {
			if appErr := EnsureAdminEditable(ev); appErr != nil {
				return appErr
			}
		}
		if appErr := MergeEventFields(ctx, ev, req.UpdateEventFields, s); appErr != nil {
			return appErr
		}
		if req.StateAction != nil {
			if appErr := ApplyAdminAction(ev, entity.StateAction(*req.StateAction), now); appErr != nil {
				return appErr
			}
		}

		if err := s.events.Update(ctx, ev); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
		}
		logger.Info("AdminEventService:Update:Saved", "event_id", ev.ID, "state", ev.State)
		return nil
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	return s.reloadWithViews(ctx, eventID)
}

func (s *PrivateService) Create(ctx context.Context, userID int64, req *dto.NewEventRequest) (*dto.EventFullResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	now := s.now().UTC()
	if appErr := CheckLeadTime(req.EventDate.Time, now, s.cfg.PublishLeadTime); appErr != nil {
		return nil, appErr
	}
	if req.ParticipantLimit != nil && *req.ParticipantLimit < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "participant_limit must not be negative", nil)
	}

	ev := &entity.Event{
		Annotation:        req.Annotation,
		Description:       req.Description,
		Title:             req.Title,
		CategoryID:        req.Category,
		InitiatorID:       userID,
		EventDate:         req.EventDate.Time.UTC(),
		CreatedOn:         now,
		RequestModeration: true,
		State:             entity.StatePending,
	}
	if req.Paid != nil {
		ev.Paid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		ev.ParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		ev.RequestModeration = *req.RequestModeration
	}

	var id int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, appErr := s.ResolveCategory(ctx, req.Category); appErr != nil {
			return appErr
		}
		loc, appErr := s.ResolveLocation(ctx, req.Location.Lat, req.Location.Lon)
		if appErr != nil {
			return appErr
		}
		ev.LocationID = loc.ID

		created, err := s.events.Create(ctx, ev)
		if err != nil {
			return errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	logger.Info("PrivateEventService:Create:Created", "event_id", id, "initiator_id", userID)
	ev, appErr := s.load(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToEventFullResponse(ev), nil
}

func (s *PrivateService) ListByInitiator(ctx context.Context, userID int64, page params.QueryParams) ([]dto.EventShortResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	events, err := s.events.ListByInitiator(ctx, userID, page.From, page.Size)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get events failed", err)
	}
	s.attachViews(ctx, events)
	return mapper.ToEventShortResponses(events), nil
}

func (s *PrivateService) Get(ctx context.Context, userID, eventID int64) (*dto.EventFullResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	ev, appErr := s.load(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if ev.InitiatorID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	ev.Views = s.views.ForEvent(ctx, ev)
	return mapper.ToEventFullResponse(ev), nil
}

func (s *PrivateService) Update(ctx context.Context, userID, eventID int64, req *dto.UpdateEventUserRequest) (*dto.EventFullResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.users.Lookup(ctx, userID); appErr != nil {
		return nil, appErr
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ev, appErr := s.lock(ctx, eventID)
		if appErr != nil {
			return appErr
		}
		if ev.InitiatorID != userID {
			return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}
		if appErr := EnsureOwnerEditable(ev); appErr != nil {
			return appErr
		}

		if appErr := s.checkDates(ev, req.UpdateEventFields, s.now().UTC()); appErr != nil {
			return appErr
		}
		if appErr := MergeEventFields(ctx, ev, req.UpdateEventFields, s); appErr != nil {
			return appErr
		}
		if req.StateAction != nil {
			if appErr := ApplyUserAction(ev, entity.StateAction(*req.StateAction)); appErr != nil {
				return appErr
			}
		}

		if err := s.events.Update(ctx, ev); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	return s.reloadWithViews(ctx, eventID)
}

func (s *PublicService) Search(ctx context.Context, query dto.EventSearchQuery, client HitSource) (*coredto.Pagination[dto.EventShortResponse], *errors.AppError) {
	criteria, appErr := s.criteria.Build(PublicSearchMode, query)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.events.PublicSearch(ctx, criteria)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "search events failed", err)
	}

	s.attachViews(ctx, page.Items)
	sortEvents(page.Items, criteria.Sort)

	s.hits.Record(ctx, constants.EventsURI, client.IP)

	return coredto.NewPagination(mapper.ToEventShortResponses(page.Items), page.Total, criteria.From, criteria.Size), nil
}

func (s *PublicService) Get(ctx context.Context, eventID int64, client HitSource) (*dto.EventFullResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ev, appErr := s.load(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if !ev.IsPublished() {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	ev.Views = s.views.ForEvent(ctx, ev)

	s.hits.Record(ctx, EventURI(ev.ID), client.IP)
	return mapper.ToEventFullResponse(ev), nil
}
