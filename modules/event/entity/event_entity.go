package entity

import "time"

type EventState string

const (
	StatePending   EventState = "PENDING"
	StatePublished EventState = "PUBLISHED"
	StateRejected  EventState = "REJECTED"
	StateCanceled  EventState = "CANCELED"
)

func ParseEventState(s string) (EventState, bool) {
	switch st := EventState(s); st {
	case StatePending, StatePublished, StateRejected, StateCanceled:
		return st, true
	}
	return "", false
}

type StateAction string

const (
	ActionPublishEvent StateAction = "PUBLISH_EVENT"
	ActionRejectEvent  StateAction = "REJECT_EVENT"
	ActionSendToReview StateAction = "SEND_TO_REVIEW"
	ActionCancelReview StateAction = "CANCEL_REVIEW"
)

type SortMode string

const (
	SortEventDate SortMode = "EVENT_DATE"
	SortViews     SortMode = "VIEWS"
)

// Event is a row of events joined with its category, initiator and
// location. ConfirmedRequests is computed by the query; Views is filled
// from the stats service.
type Event struct {
	ID                int64      `db:"id"`
	Annotation        string     `db:"annotation"`
	Description       string     `db:"description"`
	Title             string     `db:"title"`
	CategoryID        int64      `db:"category_id"`
	CategoryName      string     `db:"category_name"`
	InitiatorID       int64      `db:"initiator_id"`
	InitiatorName     string     `db:"initiator_name"`
	LocationID        int64      `db:"location_id"`
	Lat               float64    `db:"lat"`
	Lon               float64    `db:"lon"`
	EventDate         time.Time  `db:"event_date"`
	CreatedOn         time.Time  `db:"created_on"`
	PublishedOn       *time.Time `db:"published_on"`
	Paid              bool       `db:"paid"`
	ParticipantLimit  int64      `db:"participant_limit"`
	RequestModeration bool       `db:"request_moderation"`
	State             EventState `db:"state"`
	ConfirmedRequests int64      `db:"confirmed_requests"`
	Views             int64      `db:"-"`
}

func (e *Event) IsPublished() bool {
	return e.State == StatePublished
}

type Location struct {
	ID  int64   `db:"id"`
	Lat float64 `db:"lat"`
	Lon float64 `db:"lon"`
}

// SearchCriteria is a resolved event filter. Empty lists and nil pointers
// mean no filter; the date range is half-open.
type SearchCriteria struct {
	Users         []int64
	States        []EventState
	Categories    []int64
	RangeStart    *time.Time
	RangeEnd      *time.Time
	Text          string
	Paid          *bool
	OnlyAvailable bool
	Sort          SortMode
	From          int
	Size          int
}

type EventPage struct {
	Items []Event
	Total int64
}
