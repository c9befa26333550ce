package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/comment/entity"
)

type CommentRepository struct {
	DB database.IDatabase
}

func NewCommentRepository(db database.IDatabase) *CommentRepository {
	return &CommentRepository{DB: db}
}

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Comment) (int64, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	List(ctx context.Context, filter entity.CommentFilter) ([]entity.Comment, error)
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) (int64, error) {
	query := `
		INSERT INTO comments (text, event_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := r.DB.GetContext(ctx, &id, query, c.Text, c.EventID, c.AuthorID, c.Created.UTC()); err != nil {
		logger.Error("CommentRepository:Create", "event_id", c.EventID, "author_id", c.AuthorID, "error", err)
		return 0, err
	}
	return id, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	if err := r.DB.ExecContext(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, text, id); err != nil {
		logger.Error("CommentRepository:UpdateText", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		logger.Error("CommentRepository:Delete", "id", id, "error", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when the comment does not exist.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	query := `
		SELECT cm.id, cm.text, cm.event_id, cm.author_id, u.name AS author_name, cm.created
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.id = $1`

	var c entity.Comment
	if err := r.DB.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("CommentRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &c, nil
}

// List returns matching comments oldest first.
func (r *CommentRepository) List(ctx context.Context, filter entity.CommentFilter) ([]entity.Comment, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, err
	}

	comments := []entity.Comment{}
	if err := r.DB.SelectContext(ctx, &comments, query, args...); err != nil {
		logger.Error("CommentRepository:List", "author_id", filter.AuthorID, "event_id", filter.EventID, "error", err)
		return nil, err
	}
	return comments, nil
}
