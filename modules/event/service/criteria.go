package service

import (
	"fmt"
	"strings"
	"time"

	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/entity"
)

type SearchMode int

const (
	AdminSearchMode SearchMode = iota
	PublicSearchMode
)

// CriteriaBuilder turns raw search parameters into SearchCriteria.
type CriteriaBuilder struct {
	now func() time.Time
}

func NewCriteriaBuilder(now func() time.Time) *CriteriaBuilder {
	if now == nil {
		now = time.Now
	}
	return &CriteriaBuilder{now: now}
}

func (b *CriteriaBuilder) Build(mode SearchMode, in dto.EventSearchQuery) (entity.SearchCriteria, *errors.AppError) {
	var c entity.SearchCriteria

	page, err := params.NewQueryParams(in.From, in.Size)
	if err != nil {
		return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	c.From, c.Size = page.From, page.Size

	start, err := parseOptionalDateTime("range_start", in.RangeStart)
	if err != nil {
		return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	end, err := parseOptionalDateTime("range_end", in.RangeEnd)
	if err != nil {
		return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	now := b.now().UTC()
	effectiveStart := now
	if start != nil {
		effectiveStart = *start
	}
	if end != nil && end.Before(effectiveStart) {
		return c, errors.NewAppError(errors.ErrInvalidRange, "range_end must not be before range_start", nil)
	}

	if c.Categories, err = params.ParseInt64List(in.Categories); err != nil {
		return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	c.RangeEnd = end

	switch mode {
	case PublicSearchMode:
		c.States = []entity.EventState{entity.StatePublished}
		c.RangeStart = &effectiveStart
		c.Text = strings.TrimSpace(in.Text)

		if c.Paid, err = params.ParseOptionalBool(in.Paid); err != nil {
			return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
		}
		onlyAvailable, err := params.ParseOptionalBool(in.OnlyAvailable)
		if err != nil {
			return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
		}
		c.OnlyAvailable = onlyAvailable != nil && *onlyAvailable

		if c.Sort, err = parseSort(in.Sort); err != nil {
			return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
		}

	default:
		c.RangeStart = start
		c.Sort = entity.SortEventDate

		if c.Users, err = params.ParseInt64List(in.Users); err != nil {
			return c, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
		}
		for _, raw := range params.SplitList(in.States) {
			st, ok := entity.ParseEventState(strings.ToUpper(raw))
			if !ok {
				return c, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown state %q", raw), nil)
			}
			c.States = append(c.States, st)
		}
	}

	return c, nil
}

func parseOptionalDateTime(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := coredto.ParseDateTime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

func parseSort(raw string) (entity.SortMode, error) {
	switch mode := entity.SortMode(strings.ToUpper(strings.TrimSpace(raw))); mode {
	case "":
		return entity.SortEventDate, nil
	case entity.SortEventDate, entity.SortViews:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown sort %q", raw)
	}
}
