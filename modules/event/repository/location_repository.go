package repository

import (
	"context"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/event/entity"
)

type LocationRepository struct {
	DB database.IDatabase
}

func NewLocationRepository(db database.IDatabase) *LocationRepository {
	return &LocationRepository{DB: db}
}

type LocationRepositoryInterface interface {
	GetOrCreate(ctx context.Context, lat, lon float64) (*entity.Location, error)
}

// GetOrCreate returns the location with exactly these coordinates,
// inserting it when missing.
func (r *LocationRepository) GetOrCreate(ctx context.Context, lat, lon float64) (*entity.Location, error) {
	query := `
		INSERT INTO locations (lat, lon)
		VALUES ($1, $2)
		ON CONFLICT (lat, lon) DO UPDATE SET lat = EXCLUDED.lat
		RETURNING id, lat, lon
	`
	var loc entity.Location
	if err := r.DB.GetContext(ctx, &loc, query, lat, lon); err != nil {
		logger.Error("LocationRepository:GetOrCreate", "lat", lat, "lon", lon, "error", err)
		return nil, err
	}
	return &loc, nil
}
