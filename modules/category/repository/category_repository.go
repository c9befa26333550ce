package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/category/entity"
)

type CategoryRepository struct {
	DB database.IDatabase
}

func NewCategoryRepository(db database.IDatabase) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context, from, size int) ([]entity.Category, error)
	IsUsedByEvents(ctx context.Context, id int64) (bool, error)
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*entity.Category, error) {
	var created entity.Category
	err := r.DB.GetContext(ctx, &created, `INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, name)
	if err != nil {
		if !database.IsUniqueViolation(err) {
			logger.Error("CategoryRepository:Create", "error", err)
		}
		return nil, err
	}
	return &created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	err := r.DB.ExecContext(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil && !database.IsUniqueViolation(err) {
		logger.Error("CategoryRepository:Update", "id", category.ID, "error", err)
	}
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		logger.Error("CategoryRepository:Delete", "id", id, "error", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when the category does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.GetContext(ctx, &category, `SELECT id, name FROM categories WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("CategoryRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, from, size int) ([]entity.Category, error) {
	categories := []entity.Category{}
	query := `SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`
	if err := r.DB.SelectContext(ctx, &categories, query, size, from); err != nil {
		logger.Error("CategoryRepository:List", "error", err)
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) IsUsedByEvents(ctx context.Context, id int64) (bool, error) {
	var used bool
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE category_id = $1)`
	if err := r.DB.GetContext(ctx, &used, query, id); err != nil {
		logger.Error("CategoryRepository:IsUsedByEvents", "id", id, "error", err)
		return false, err
	}
	return used, nil
}
