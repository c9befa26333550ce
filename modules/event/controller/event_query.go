package controller

import (
	"strconv"

	"event-hub/modules/event/dto"

	"github.com/labstack/echo/v4"
)

func searchQueryFrom(ctx echo.Context) dto.EventSearchQuery {
	q := ctx.QueryParams()
	return dto.EventSearchQuery{
		Users:         q["users"],
		States:        q["states"],
		Categories:    q["categories"],
		RangeStart:    q.Get("range_start"),
		RangeEnd:      q.Get("range_end"),
		Text:          q.Get("text"),
		Paid:          q.Get("paid"),
		OnlyAvailable: q.Get("only_available"),
		Sort:          q.Get("sort"),
		From:          q.Get("from"),
		Size:          q.Get("size"),
	}
}

func int64Param(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}
