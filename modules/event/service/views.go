package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"event-hub/core/cache"
	"event-hub/core/constants"
	"event-hub/core/logger"
	"event-hub/modules/event/entity"
	statsclient "event-hub/modules/stats/client"
)

// EventURI is the canonical public uri of one event.
func EventURI(id int64) string {
	return fmt.Sprintf("%s/%d", constants.EventsURI, id)
}

// ViewCounter reads unique view counts from the stats service. Any
// failure counts as zero views; reads never fail because of stats.
type ViewCounter struct {
	stats statsclient.StatsClient
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewViewCounter builds a counter. c may be nil to disable caching.
func NewViewCounter(stats statsclient.StatsClient, c cache.Cache, ttl time.Duration, now func() time.Time) *ViewCounter {
	if now == nil {
		now = time.Now
	}
	return &ViewCounter{stats: stats, cache: c, ttl: ttl, now: now}
}

func (v *ViewCounter) ForEvent(ctx context.Context, ev *entity.Event) int64 {
	if ev.PublishedOn == nil {
		return 0
	}

	key := viewsKey(ev.ID)
	if views, ok := v.cached(ctx, key); ok {
		return views
	}

	uri := EventURI(ev.ID)
	stats, err := v.stats.QueryViews(ctx, *ev.PublishedOn, v.now().UTC(), []string{uri}, true)
	if err != nil {
		logger.Warn("ViewCounter:ForEvent:QueryViews", "event_id", ev.ID, "error", err)
		return 0
	}

	var views int64
	for _, st := range stats {
		if st.URI == uri {
			views += st.Hits
		}
	}

	v.store(ctx, key, views)
	return views
}

// ForEvents returns views keyed by event id. Cached counts are reused and
// the rest are fetched with a single stats query. Events without hits are
// present with zero.
func (v *ViewCounter) ForEvents(ctx context.Context, events []entity.Event) map[int64]int64 {
	views := make(map[int64]int64, len(events))
	if len(events) == 0 {
		return views
	}

	var (
		start  time.Time
		uris   []string
		byURI  = make(map[string]int64, len(events))
		missed = make(map[int64]bool, len(events))
	)
	for _, ev := range events {
		if _, done := views[ev.ID]; done {
			continue
		}
		if cachedViews, ok := v.cached(ctx, viewsKey(ev.ID)); ok {
			views[ev.ID] = cachedViews
			continue
		}
		views[ev.ID] = 0
		missed[ev.ID] = true
		uri := EventURI(ev.ID)
		uris = append(uris, uri)
		byURI[uri] = ev.ID
		if start.IsZero() || ev.CreatedOn.Before(start) {
			start = ev.CreatedOn
		}
	}
	if len(uris) == 0 {
		return views
	}

	stats, err := v.stats.QueryViews(ctx, start, v.now().UTC(), uris, true)
	if err != nil {
		logger.Warn("ViewCounter:ForEvents:QueryViews", "events", len(uris), "error", err)
		return views
	}

	for _, st := range stats {
		if id, ok := byURI[st.URI]; ok {
			views[id] += st.Hits
		}
	}
	for id := range missed {
		v.store(ctx, viewsKey(id), views[id])
	}
	return views
}

func viewsKey(eventID int64) string {
	return fmt.Sprintf(constants.RedisKeyEventViews, eventID)
}

func (v *ViewCounter) store(ctx context.Context, key string, views int64) {
	if v.cache == nil || v.ttl <= 0 {
		return
	}
	if err := v.cache.Set(ctx, key, strconv.FormatInt(views, 10), v.ttl); err != nil {
		logger.Warn("ViewCounter:CacheSet", "key", key, "error", err)
	}
}

func (v *ViewCounter) cached(ctx context.Context, key string) (int64, bool) {
	if v.cache == nil {
		return 0, false
	}
	raw, err := v.cache.Get(ctx, key)
	if err != nil {
		if !stderrors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("ViewCounter:CacheGet", "key", key, "error", err)
		}
		return 0, false
	}
	views, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return views, true
}
