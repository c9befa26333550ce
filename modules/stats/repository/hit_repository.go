package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/stats/entity"

	"github.com/jmoiron/sqlx"
)

type HitRepository struct {
	DB database.IDatabase
}

func NewHitRepository(db database.IDatabase) *HitRepository {
	return &HitRepository{DB: db}
}

type HitRepositoryInterface interface {
	Create(ctx context.Context, hit *entity.Hit) (*entity.Hit, error)
	Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]entity.ViewStats, error)
}

func (r *HitRepository) Create(ctx context.Context, hit *entity.Hit) (*entity.Hit, error) {
	query := `INSERT INTO hits (app, uri, ip, timestamp) VALUES ($1, $2, $3, $4)
		RETURNING id, app, uri, ip, timestamp`

	var created entity.Hit
	if err := r.DB.GetContext(ctx, &created, query, hit.App, hit.URI, hit.IP, hit.Timestamp.UTC()); err != nil {
		logger.Error("HitRepository:Create", "uri", hit.URI, "error", err)
		return nil, err
	}
	return &created, nil
}

// Stats counts hits in [start, end] per app and uri, most viewed first.
// An empty uris list matches every uri.
func (r *HitRepository) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]entity.ViewStats, error) {
	countExpr := "COUNT(ip)"
	if unique {
		countExpr = "COUNT(DISTINCT ip)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT app, uri, %s AS hits FROM hits WHERE timestamp BETWEEN ? AND ?", countExpr)
	args := []any{start.UTC(), end.UTC()}
	if len(uris) > 0 {
		sb.WriteString(" AND uri IN (?)")
		args = append(args, uris)
	}
	sb.WriteString(" GROUP BY app, uri ORDER BY hits DESC")

	query, args, err := sqlx.In(sb.String(), args...)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	stats := []entity.ViewStats{}
	if err := r.DB.SelectContext(ctx, &stats, query, args...); err != nil {
		logger.Error("HitRepository:Stats", "uris", len(uris), "error", err)
		return nil, err
	}
	return stats, nil
}
