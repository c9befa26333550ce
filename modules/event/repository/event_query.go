package repository

import (
	"strings"

	"event-hub/modules/event/entity"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var dialect = goqu.Dialect("postgres")

var confirmedCount = goqu.L(`(SELECT COUNT(*) FROM requests r WHERE r.event_id = "e"."id" AND r.status = 'CONFIRMED')`)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func eventColumns() []any {
	return []any{
		goqu.I("e.id"),
		goqu.I("e.annotation"),
		goqu.I("e.description"),
		goqu.I("e.title"),
		goqu.I("e.category_id"),
		goqu.I("c.name").As("category_name"),
		goqu.I("e.initiator_id"),
		goqu.I("u.name").As("initiator_name"),
		goqu.I("e.location_id"),
		goqu.I("l.lat"),
		goqu.I("l.lon"),
		goqu.I("e.event_date"),
		goqu.I("e.created_on"),
		goqu.I("e.published_on"),
		goqu.I("e.paid"),
		goqu.I("e.participant_limit"),
		goqu.I("e.request_moderation"),
		goqu.I("e.state"),
		confirmedCount.As("confirmed_requests"),
	}
}

// eventsFrom joins events with the tables needed to build a full event.
func eventsFrom() *goqu.SelectDataset {
	return dialect.From(goqu.T("events").As("e")).
		Join(goqu.T("categories").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("e.category_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("e.initiator_id")))).
		Join(goqu.T("locations").As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("e.location_id")))).
		Prepared(true)
}

func selectEvents() *goqu.SelectDataset {
	return eventsFrom().Select(eventColumns()...)
}

// criteriaFilters translates criteria into AND-ed predicates.
func criteriaFilters(c entity.SearchCriteria) []exp.Expression {
	var where []exp.Expression

	if len(c.Users) > 0 {
		where = append(where, goqu.I("e.initiator_id").In(c.Users))
	}
	if len(c.States) > 0 {
		states := make([]string, len(c.States))
		for i, st := range c.States {
			states[i] = string(st)
		}
		where = append(where, goqu.I("e.state").In(states))
	}
	if len(c.Categories) > 0 {
		where = append(where, goqu.I("e.category_id").In(c.Categories))
	}
	if c.RangeStart != nil {
		where = append(where, goqu.I("e.event_date").Gte(c.RangeStart.UTC()))
	}
	if c.RangeEnd != nil {
		where = append(where, goqu.I("e.event_date").Lt(c.RangeEnd.UTC()))
	}
	if c.Text != "" {
		pattern := "%" + likeEscaper.Replace(c.Text) + "%"
		where = append(where, goqu.Or(
			goqu.I("e.annotation").ILike(pattern),
			goqu.I("e.description").ILike(pattern),
		))
	}
	if c.Paid != nil {
		where = append(where, goqu.I("e.paid").Eq(*c.Paid))
	}
	if c.OnlyAvailable {
		where = append(where, goqu.Or(
			goqu.I("e.participant_limit").Eq(0),
			goqu.I("e.participant_limit").Gt(confirmedCount),
		))
	}
	return where
}

// buildSearchQuery returns the page query and the matching count query.
func buildSearchQuery(c entity.SearchCriteria) (pageSQL string, pageArgs []any, countSQL string, countArgs []any, err error) {
	where := criteriaFilters(c)

	page := selectEvents().
		Where(where...).
		Order(goqu.I("e.event_date").Desc(), goqu.I("e.id").Desc()).
		Offset(uint(c.From)).
		Limit(uint(c.Size))
	if pageSQL, pageArgs, err = page.ToSQL(); err != nil {
		return
	}

	count := eventsFrom().Select(goqu.COUNT(goqu.Star())).Where(where...)
	countSQL, countArgs, err = count.ToSQL()
	return
}

func buildGetByIDQuery(id int64) (string, []any, error) {
	return selectEvents().Where(goqu.I("e.id").Eq(id)).ToSQL()
}

func buildLockQuery(id int64) (string, []any, error) {
	return dialect.From("events").
		Prepared(true).
		Select("id").
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait).
		ToSQL()
}

func buildListByInitiatorQuery(initiatorID int64, from, size int) (string, []any, error) {
	return selectEvents().
		Where(goqu.I("e.initiator_id").Eq(initiatorID)).
		Order(goqu.I("e.id").Asc()).
		Offset(uint(from)).
		Limit(uint(size)).
		ToSQL()
}

func buildListByIDsQuery(ids []int64) (string, []any, error) {
	return selectEvents().
		Where(goqu.I("e.id").In(ids)).
		Order(goqu.I("e.id").Asc()).
		ToSQL()
}
