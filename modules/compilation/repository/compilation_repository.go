package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/compilation/entity"

	"github.com/jmoiron/sqlx"
)

type CompilationRepository struct {
	DB database.IDatabase
}

func NewCompilationRepository(db database.IDatabase) *CompilationRepository {
	return &CompilationRepository{DB: db}
}

type CompilationRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Compilation) (*entity.Compilation, error)
	Update(ctx context.Context, c *entity.Compilation) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entity.Compilation, error)
	List(ctx context.Context, pinned *bool, from, size int) ([]entity.Compilation, error)
	ReplaceEvents(ctx context.Context, compilationID int64, eventIDs []int64) error
	EventIDs(ctx context.Context, compilationIDs []int64) (map[int64][]int64, error)
}

func (r *CompilationRepository) Create(ctx context.Context, c *entity.Compilation) (*entity.Compilation, error) {
	var created entity.Compilation
	query := `INSERT INTO compilations (title, pinned) VALUES ($1, $2) RETURNING id, title, pinned`
	if err := r.DB.GetContext(ctx, &created, query, c.Title, c.Pinned); err != nil {
		if !database.IsUniqueViolation(err) {
			logger.Error("CompilationRepository:Create", "error", err)
		}
		return nil, err
	}
	return &created, nil
}

func (r *CompilationRepository) Update(ctx context.Context, c *entity.Compilation) error {
	err := r.DB.ExecContext(ctx, `UPDATE compilations SET title = $1, pinned = $2 WHERE id = $3`, c.Title, c.Pinned, c.ID)
	if err != nil && !database.IsUniqueViolation(err) {
		logger.Error("CompilationRepository:Update", "id", c.ID, "error", err)
	}
	return err
}

// Delete removes the compilation. Its event links go with it.
func (r *CompilationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM compilations WHERE id = $1`, id); err != nil {
		logger.Error("CompilationRepository:Delete", "id", id, "error", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when the compilation does not exist.
func (r *CompilationRepository) GetByID(ctx context.Context, id int64) (*entity.Compilation, error) {
	var c entity.Compilation
	if err := r.DB.GetContext(ctx, &c, `SELECT id, title, pinned FROM compilations WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("CompilationRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &c, nil
}

func (r *CompilationRepository) List(ctx context.Context, pinned *bool, from, size int) ([]entity.Compilation, error) {
	query, args, err := buildListQuery(pinned, from, size)
	if err != nil {
		return nil, err
	}

	compilations := []entity.Compilation{}
	if err := r.DB.SelectContext(ctx, &compilations, query, args...); err != nil {
		logger.Error("CompilationRepository:List", "error", err)
		return nil, err
	}
	return compilations, nil
}

// ReplaceEvents swaps the event set of a compilation. Callers run it inside a
// transaction. An unknown event id fails with a foreign key violation.
func (r *CompilationRepository) ReplaceEvents(ctx context.Context, compilationID int64, eventIDs []int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, compilationID); err != nil {
		logger.Error("CompilationRepository:ReplaceEvents:Clear", "id", compilationID, "error", err)
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	query, args, err := buildInsertEventsQuery(compilationID, eventIDs)
	if err != nil {
		return err
	}
	if err := r.DB.ExecContext(ctx, query, args...); err != nil {
		if !database.IsForeignKeyViolation(err) {
			logger.Error("CompilationRepository:ReplaceEvents:Insert", "id", compilationID, "error", err)
		}
		return err
	}
	return nil
}

// EventIDs maps each compilation id to its event ids in ascending order.
func (r *CompilationRepository) EventIDs(ctx context.Context, compilationIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(compilationIDs))
	if len(compilationIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT compilation_id, event_id FROM compilation_events
		WHERE compilation_id IN (?)
		ORDER BY compilation_id, event_id`, compilationIDs)
	if err != nil {
		return nil, err
	}

	links := []entity.CompilationEvent{}
	if err := r.DB.SelectContext(ctx, &links, r.DB.Rebind(query), args...); err != nil {
		logger.Error("CompilationRepository:EventIDs", "error", err)
		return nil, err
	}
	for _, l := range links {
		out[l.CompilationID] = append(out[l.CompilationID], l.EventID)
	}
	return out, nil
}
