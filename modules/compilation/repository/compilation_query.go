package repository

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var dialect = goqu.Dialect("postgres")

func buildListQuery(pinned *bool, from, size int) (string, []any, error) {
	var where []exp.Expression
	if pinned != nil {
		where = append(where, goqu.C("pinned").Eq(*pinned))
	}
	return dialect.From("compilations").
		Prepared(true).
		Select("id", "title", "pinned").
		Where(where...).
		Order(goqu.C("id").Asc()).
		Offset(uint(from)).
		Limit(uint(size)).
		ToSQL()
}

func buildInsertEventsQuery(compilationID int64, eventIDs []int64) (string, []any, error) {
	rows := make([]any, len(eventIDs))
	for i, eventID := range eventIDs {
		rows[i] = goqu.Record{"compilation_id": compilationID, "event_id": eventID}
	}
	return dialect.Insert("compilation_events").
		Prepared(true).
		Rows(rows...).
		ToSQL()
}
