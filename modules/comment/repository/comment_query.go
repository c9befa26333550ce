package repository

import (
	"event-hub/modules/comment/entity"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var dialect = goqu.Dialect("postgres")

func buildListQuery(f entity.CommentFilter) (string, []any, error) {
	var where []exp.Expression
	if f.AuthorID != 0 {
		where = append(where, goqu.I("cm.author_id").Eq(f.AuthorID))
	}
	if f.EventID != 0 {
		where = append(where, goqu.I("cm.event_id").Eq(f.EventID))
	}
	if f.RangeStart != nil {
		where = append(where, goqu.I("cm.created").Gte(f.RangeStart.UTC()))
	}
	if f.RangeEnd != nil {
		where = append(where, goqu.I("cm.created").Lte(f.RangeEnd.UTC()))
	}

	return dialect.From(goqu.T("comments").As("cm")).
		Prepared(true).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("cm.author_id")))).
		Select(
			goqu.I("cm.id"),
			goqu.I("cm.text"),
			goqu.I("cm.event_id"),
			goqu.I("cm.author_id"),
			goqu.I("u.name").As("author_name"),
			goqu.I("cm.created"),
		).
		Where(where...).
		Order(goqu.I("cm.created").Asc(), goqu.I("cm.id").Asc()).
		Offset(uint(f.From)).
		Limit(uint(f.Size)).
		ToSQL()
}
