package repository

import (
	"strings"
	"testing"
	"time"

	"event-hub/modules/event/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildSearchQuery_NoFilters(t *testing.T) {
	pageSQL, pageArgs, countSQL, countArgs, err := buildSearchQuery(entity.SearchCriteria{From: 0, Size: 10})
	require.NoError(t, err)

	assert.NotContains(t, pageSQL, ") WHERE")
	assert.NotContains(t, pageSQL, `"e"."state" IN (`)
	assert.Contains(t, pageSQL, "WHERE r.event_id = ", "confirmed count subquery stays correlated")
	assert.Contains(t, pageSQL, `FROM "events" AS "e"`)
	assert.Contains(t, pageSQL, `INNER JOIN "categories" AS "c"`)
	assert.Contains(t, pageSQL, `ORDER BY "e"."event_date" DESC, "e"."id" DESC`)
	assert.Contains(t, pageSQL, `AS "confirmed_requests"`)
	assert.Contains(t, pageSQL, "LIMIT")
	assert.NotEmpty(t, pageArgs)

	assert.Contains(t, countSQL, "SELECT COUNT(*)")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.Empty(t, countArgs)
}

func Test_BuildSearchQuery_AllFilters(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	paid := false

	pageSQL, pageArgs, countSQL, countArgs, err := buildSearchQuery(entity.SearchCriteria{
		Users:         []int64{1, 2},
		States:        []entity.EventState{entity.StatePublished},
		Categories:    []int64{3},
		RangeStart:    &start,
		RangeEnd:      &end,
		Text:          "50%_off",
		Paid:          &paid,
		OnlyAvailable: true,
		From:          20,
		Size:          5,
	})
	require.NoError(t, err)

	for _, fragment := range []string{
		`"e"."initiator_id" IN (`,
		`"e"."state" IN (`,
		`"e"."category_id" IN (`,
		`"e"."event_date" >= `,
		`"e"."event_date" < `,
		`"e"."annotation" ILIKE `,
		`"e"."description" ILIKE `,
		`"e"."paid" IS FALSE`,
		`"e"."participant_limit" = `,
		`"e"."participant_limit" > (SELECT COUNT(*) FROM requests r`,
	} {
		assert.Contains(t, pageSQL, fragment)
		assert.Contains(t, countSQL, fragment)
	}

	assert.Contains(t, pageArgs, `%50\%\_off%`)
	assert.Contains(t, pageArgs, start)
	assert.Contains(t, pageArgs, end)
	assert.Contains(t, pageArgs, "PUBLISHED")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.Contains(t, countArgs, "PUBLISHED")
}

func Test_BuildLockQuery(t *testing.T) {
	query, args, err := buildLockQuery(7)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "events" WHERE ("id" = $1) FOR UPDATE`, strings.TrimSpace(query))
	assert.Equal(t, []any{int64(7)}, args)
}
