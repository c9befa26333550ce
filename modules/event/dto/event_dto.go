package dto

import (
	"strings"

	coredto "event-hub/core/dto"
	categorydto "event-hub/modules/category/dto"
	userdto "event-hub/modules/user/dto"
)

type LocationDto struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

type NewEventRequest struct {
	Annotation        string           `json:"annotation" validate:"required,notblank,min=20,max=2000"`
	Category          int64            `json:"category" validate:"required,gt=0"`
	Description       string           `json:"description" validate:"required,notblank,min=20,max=7000"`
	EventDate         coredto.DateTime `json:"event_date" validate:"required"`
	Location          *LocationDto     `json:"location" validate:"required"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int64           `json:"participant_limit" validate:"omitempty,gte=0"`
	RequestModeration *bool            `json:"request_moderation"`
	Title             string           `json:"title" validate:"required,notblank,min=3,max=120"`
}

func (r *NewEventRequest) Normalize() {
	r.Annotation = strings.TrimSpace(r.Annotation)
	r.Description = strings.TrimSpace(r.Description)
	r.Title = strings.TrimSpace(r.Title)
}

// UpdateEventFields holds the optional fields shared by owner and admin
// updates. Nil means keep the current value.
type UpdateEventFields struct {
	Annotation        *string           `json:"annotation" validate:"omitempty,min=20,max=2000"`
	Category          *int64            `json:"category" validate:"omitempty,gt=0"`
	Description       *string           `json:"description" validate:"omitempty,min=20,max=7000"`
	EventDate         *coredto.DateTime `json:"event_date"`
	Location          *LocationDto      `json:"location"`
	Paid              *bool             `json:"paid"`
	ParticipantLimit  *int64            `json:"participant_limit" validate:"omitempty,gte=0"`
	RequestModeration *bool             `json:"request_moderation"`
	Title             *string           `json:"title" validate:"omitempty,min=3,max=120"`
}

// Normalize trims text fields and treats blank ones as absent.
func (f *UpdateEventFields) Normalize() {
	f.Annotation = trimToNil(f.Annotation)
	f.Description = trimToNil(f.Description)
	f.Title = trimToNil(f.Title)
	if f.EventDate != nil && f.EventDate.IsZero() {
		f.EventDate = nil
	}
}

type UpdateEventUserRequest struct {
	UpdateEventFields
	StateAction *string `json:"state_action" validate:"omitempty,oneof=SEND_TO_REVIEW CANCEL_REVIEW"`
}

func (r *UpdateEventUserRequest) Normalize() {
	r.UpdateEventFields.Normalize()
	r.StateAction = trimToNil(r.StateAction)
}

type UpdateEventAdminRequest struct {
	UpdateEventFields
	StateAction *string `json:"state_action" validate:"omitempty,oneof=PUBLISH_EVENT REJECT_EVENT"`
}

func (r *UpdateEventAdminRequest) Normalize() {
	r.UpdateEventFields.Normalize()
	r.StateAction = trimToNil(r.StateAction)
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// EventSearchQuery carries raw query parameters; parsing happens in the
// criteria builder.
type EventSearchQuery struct {
	Users         []string
	States        []string
	Categories    []string
	RangeStart    string
	RangeEnd      string
	Text          string
	Paid          string
	OnlyAvailable string
	Sort          string
	From          string
	Size          string
}

type EventFullResponse struct {
	ID                int64                        `json:"id"`
	Annotation        string                       `json:"annotation"`
	Category          categorydto.CategoryResponse `json:"category"`
	ConfirmedRequests int64                        `json:"confirmed_requests"`
	CreatedOn         coredto.DateTime             `json:"created_on"`
	Description       string                       `json:"description"`
	EventDate         coredto.DateTime             `json:"event_date"`
	Initiator         userdto.UserShortResponse    `json:"initiator"`
	Location          LocationDto                  `json:"location"`
	Paid              bool                         `json:"paid"`
	ParticipantLimit  int64                        `json:"participant_limit"`
	PublishedOn       *coredto.DateTime            `json:"published_on"`
	RequestModeration bool                         `json:"request_moderation"`
	State             string                       `json:"state"`
	Title             string                       `json:"title"`
	Views             int64                        `json:"views"`
}

type EventShortResponse struct {
	ID                int64                        `json:"id"`
	Annotation        string                       `json:"annotation"`
	Category          categorydto.CategoryResponse `json:"category"`
	ConfirmedRequests int64                        `json:"confirmed_requests"`
	EventDate         coredto.DateTime             `json:"event_date"`
	Initiator         userdto.UserShortResponse    `json:"initiator"`
	Paid              bool                         `json:"paid"`
	Title             string                       `json:"title"`
	Views             int64                        `json:"views"`
}
