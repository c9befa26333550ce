package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"event-hub/core/errors"
	evententity "event-hub/modules/event/entity"
	"event-hub/modules/request/dto"
	"event-hub/modules/request/entity"
	userentity "event-hub/modules/user/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRequests struct {
	rows   map[int64]entity.ParticipationRequest
	nextID int64
}

func newMemRequests() *memRequests {
	return &memRequests{rows: map[int64]entity.ParticipationRequest{}, nextID: 1}
}

func (m *memRequests) Create(_ context.Context, req *entity.ParticipationRequest) (*entity.ParticipationRequest, error) {
	r := *req
	r.ID = m.nextID
	m.nextID++
	m.rows[r.ID] = r
	return &r, nil
}

func (m *memRequests) UpdateStatus(_ context.Context, id int64, status entity.RequestStatus) error {
	r := m.rows[id]
	r.Status = status
	m.rows[id] = r
	return nil
}

func (m *memRequests) UpdateStatuses(ctx context.Context, ids []int64, status entity.RequestStatus) error {
	for _, id := range ids {
		_ = m.UpdateStatus(ctx, id, status)
	}
	return nil
}

func (m *memRequests) GetByID(_ context.Context, id int64) (*entity.ParticipationRequest, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memRequests) GetByIDs(_ context.Context, ids []int64) ([]entity.ParticipationRequest, error) {
	out := []entity.ParticipationRequest{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if r, ok := m.rows[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRequests) filter(keep func(entity.ParticipationRequest) bool) []entity.ParticipationRequest {
	out := []entity.ParticipationRequest{}
	for id := int64(1); id < m.nextID; id++ {
		if r, ok := m.rows[id]; ok && keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (m *memRequests) ListByEvent(_ context.Context, eventID int64) ([]entity.ParticipationRequest, error) {
	return m.filter(func(r entity.ParticipationRequest) bool { return r.EventID == eventID }), nil
}

func (m *memRequests) ListByRequester(_ context.Context, requesterID int64) ([]entity.ParticipationRequest, error) {
	return m.filter(func(r entity.ParticipationRequest) bool { return r.RequesterID == requesterID }), nil
}

func (m *memRequests) CountByEventAndStatus(_ context.Context, eventID int64, status entity.RequestStatus) (int64, error) {
	n := m.filter(func(r entity.ParticipationRequest) bool { return r.EventID == eventID && r.Status == status })
	return int64(len(n)), nil
}

func (m *memRequests) FindActive(_ context.Context, eventID, requesterID int64) (*entity.ParticipationRequest, error) {
	found := m.filter(func(r entity.ParticipationRequest) bool {
		return r.EventID == eventID && r.RequesterID == requesterID && r.IsActive()
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *memRequests) statusOf(id int64) entity.RequestStatus {
	return m.rows[id].Status
}

type memEvents map[int64]evententity.Event

func (m memEvents) GetByID(_ context.Context, id int64) (*evententity.Event, error) {
	ev, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &ev, nil
}

func (m memEvents) GetByIDForUpdate(ctx context.Context, id int64) (*evententity.Event, error) {
	return m.GetByID(ctx, id)
}

type knownUsers map[int64]bool

func (k knownUsers) Lookup(_ context.Context, id int64) (*userentity.User, *errors.AppError) {
	if !k[id] {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return &userentity.User{ID: id}, nil
}

type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	owner       int64 = 1
	eventLimit1 int64 = 10
	eventOpen   int64 = 11
	eventDraft  int64 = 12
	eventLimit3 int64 = 13
)

func newTestService() (*RequestService, *memRequests) {
	events := memEvents{
		eventLimit1: {ID: eventLimit1, InitiatorID: owner, State: evententity.StatePublished, ParticipantLimit: 1, RequestModeration: true},
		eventOpen:   {ID: eventOpen, InitiatorID: owner, State: evententity.StatePublished, ParticipantLimit: 0, RequestModeration: true},
		eventDraft:  {ID: eventDraft, InitiatorID: owner, State: evententity.StatePending, ParticipantLimit: 5, RequestModeration: true},
		eventLimit3: {ID: eventLimit3, InitiatorID: owner, State: evententity.StatePublished, ParticipantLimit: 3, RequestModeration: true},
	}
	users := knownUsers{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	repo := newMemRequests()
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewRequestService(repo, events, users, inlineTx{}, now), repo
}

func mustCreate(t *testing.T, svc *RequestService, userID, eventID int64) int64 {
	t.Helper()
	created, appErr := svc.Create(context.Background(), userID, eventID)
	require.Nil(t, appErr)
	return created.ID
}

func Test_RequestService_Create_AutoConfirmWhenUnlimited(t *testing.T) {
	svc, _ := newTestService()

	created, appErr := svc.Create(context.Background(), 2, eventOpen)
	require.Nil(t, appErr)
	assert.Equal(t, "CONFIRMED", created.Status)
	assert.Equal(t, eventOpen, created.Event)
	assert.Equal(t, int64(2), created.Requester)
}

func Test_RequestService_Create_Guards(t *testing.T) {
	svc, repo := newTestService()

	_, appErr := svc.Create(context.Background(), owner, eventLimit1)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
	assert.Empty(t, repo.rows, "nothing is persisted for an own-event request")

	_, appErr = svc.Create(context.Background(), 2, eventDraft)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)

	_, appErr = svc.Create(context.Background(), 2, 999)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	_, appErr = svc.Create(context.Background(), 404, eventLimit1)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	mustCreate(t, svc, 2, eventLimit1)
	_, appErr = svc.Create(context.Background(), 2, eventLimit1)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func Test_RequestService_Create_LimitReached(t *testing.T) {
	svc, _ := newTestService()

	r1 := mustCreate(t, svc, 2, eventLimit1)
	_, appErr := svc.UpdateStatuses(context.Background(), owner, eventLimit1, &dto.StatusUpdateRequest{RequestIDs: []int64{r1}, Status: "CONFIRMED"})
	require.Nil(t, appErr)

	_, appErr = svc.Create(context.Background(), 3, eventLimit1)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrParticipantLimitReached, appErr.Code)
}

func Test_RequestService_Cancel_Idempotent(t *testing.T) {
	svc, repo := newTestService()
	id := mustCreate(t, svc, 2, eventLimit1)

	for i := 0; i < 2; i++ {
		got, appErr := svc.Cancel(context.Background(), 2, id)
		require.Nil(t, appErr)
		assert.Equal(t, "CANCELED", got.Status)
	}
	assert.Equal(t, entity.StatusCanceled, repo.statusOf(id))

	_, appErr := svc.Cancel(context.Background(), 3, id)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	again := mustCreate(t, svc, 2, eventLimit1)
	assert.NotEqual(t, id, again, "a canceled request no longer blocks a new one")
}

func Test_RequestService_BulkConfirm_LimitOne(t *testing.T) {
	svc, repo := newTestService()
	r1 := mustCreate(t, svc, 2, eventLimit1)
	r2 := mustCreate(t, svc, 3, eventLimit1)
	r3 := mustCreate(t, svc, 4, eventLimit1)

	result, appErr := svc.UpdateStatuses(context.Background(), owner, eventLimit1,
		&dto.StatusUpdateRequest{RequestIDs: []int64{r1, r2, r3}, Status: "CONFIRMED"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrParticipantLimitReached, appErr.Code)
	assert.Equal(t, "Participants limit is reached", appErr.Message)
	require.NotNil(t, result)
	require.Len(t, result.ConfirmedRequests, 1)
	assert.Equal(t, r1, result.ConfirmedRequests[0].ID)
	require.Len(t, result.RejectedRequests, 2)

	assert.Equal(t, entity.StatusConfirmed, repo.statusOf(r1))
	assert.Equal(t, entity.StatusRejected, repo.statusOf(r2))
	assert.Equal(t, entity.StatusRejected, repo.statusOf(r3))
}

func Test_RequestService_BulkConfirm_NeverExceedsLimit(t *testing.T) {
	svc, repo := newTestService()
	var ids []int64
	for user := int64(2); user <= 6; user++ {
		ids = append(ids, mustCreate(t, svc, user, eventLimit3))
	}

	result, appErr := svc.UpdateStatuses(context.Background(), owner, eventLimit3,
		&dto.StatusUpdateRequest{RequestIDs: []int64{ids[4], ids[3]}, Status: "CONFIRMED"})
	require.Nil(t, appErr)
	assert.Len(t, result.ConfirmedRequests, 2)

	result, appErr = svc.UpdateStatuses(context.Background(), owner, eventLimit3,
		&dto.StatusUpdateRequest{RequestIDs: []int64{ids[2], ids[1], ids[0]}, Status: "CONFIRMED"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrParticipantLimitReached, appErr.Code)
	require.Len(t, result.ConfirmedRequests, 1)
	assert.Equal(t, ids[2], result.ConfirmedRequests[0].ID)

	confirmed, _ := repo.CountByEventAndStatus(context.Background(), eventLimit3, entity.StatusConfirmed)
	assert.Equal(t, int64(3), confirmed)
}

func Test_RequestService_BulkUpdate_NonPendingIsConflict(t *testing.T) {
	svc, repo := newTestService()
	r1 := mustCreate(t, svc, 2, eventLimit3)
	r2 := mustCreate(t, svc, 3, eventLimit3)
	_, appErr := svc.UpdateStatuses(context.Background(), owner, eventLimit3, &dto.StatusUpdateRequest{RequestIDs: []int64{r1}, Status: "REJECTED"})
	require.Nil(t, appErr)

	_, appErr = svc.UpdateStatuses(context.Background(), owner, eventLimit3,
		&dto.StatusUpdateRequest{RequestIDs: []int64{r2, r1}, Status: "CONFIRMED"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrRequestNotPending, appErr.Code)
	assert.Equal(t, entity.StatusPending, repo.statusOf(r2))
}

func Test_RequestService_BulkUpdate_Guards(t *testing.T) {
	svc, _ := newTestService()
	r1 := mustCreate(t, svc, 2, eventLimit3)

	_, appErr := svc.UpdateStatuses(context.Background(), 2, eventLimit3, &dto.StatusUpdateRequest{RequestIDs: []int64{r1}, Status: "CONFIRMED"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code, "only the initiator may decide")

	_, appErr = svc.UpdateStatuses(context.Background(), owner, eventLimit3, &dto.StatusUpdateRequest{RequestIDs: []int64{r1}, Status: "PENDING"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.UpdateStatuses(context.Background(), owner, eventLimit3, &dto.StatusUpdateRequest{RequestIDs: []int64{r1, 777}, Status: "CONFIRMED"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func Test_RequestService_BulkUpdate_NoOpWhenUnlimited(t *testing.T) {
	svc, repo := newTestService()
	id := mustCreate(t, svc, 2, eventOpen)

	result, appErr := svc.UpdateStatuses(context.Background(), owner, eventOpen, &dto.StatusUpdateRequest{RequestIDs: []int64{id}, Status: "REJECTED"})
	require.Nil(t, appErr)
	assert.Empty(t, result.ConfirmedRequests)
	assert.Empty(t, result.RejectedRequests)
	assert.Equal(t, entity.StatusConfirmed, repo.statusOf(id))
}

func Test_RequestService_Listing(t *testing.T) {
	svc, _ := newTestService()
	mustCreate(t, svc, 2, eventLimit1)
	mustCreate(t, svc, 2, eventOpen)
	mustCreate(t, svc, 3, eventOpen)

	own, appErr := svc.ListByRequester(context.Background(), 2)
	require.Nil(t, appErr)
	assert.Len(t, own, 2)

	forEvent, appErr := svc.ListForEvent(context.Background(), owner, eventOpen)
	require.Nil(t, appErr)
	assert.Len(t, forEvent, 2)

	_, appErr = svc.ListForEvent(context.Background(), 2, eventOpen)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
