package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/modules/user/entity"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, ids []int64, from, size int) ([]entity.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at
	`
	var created entity.User
	if err := r.DB.GetContext(ctx, &created, query, user.Name, user.Email); err != nil {
		if !database.IsUniqueViolation(err) {
			logger.Error("UserRepository:Create", "error", err)
		}
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, name, email, created_at FROM users WHERE id = $1`

	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &user, nil
}

// List returns the users with the given ids, or a page of all users when ids is empty.
func (r *UserRepository) List(ctx context.Context, ids []int64, from, size int) ([]entity.User, error) {
	users := []entity.User{}

	if len(ids) > 0 {
		query, args, err := sqlx.In(`
			SELECT id, name, email, created_at FROM users
			WHERE id IN (?)
			ORDER BY id
			LIMIT ? OFFSET ?`, ids, size, from)
		if err != nil {
			return nil, err
		}
		if err := r.DB.SelectContext(ctx, &users, r.DB.Rebind(query), args...); err != nil {
			logger.Error("UserRepository:List:ByIDs", "error", err)
			return nil, err
		}
		return users, nil
	}

	query := `
		SELECT id, name, email, created_at FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	if err := r.DB.SelectContext(ctx, &users, query, size, from); err != nil {
		logger.Error("UserRepository:List", "error", err)
		return nil, err
	}
	return users, nil
}

// Delete removes a user. It fails with a foreign key violation while the
// user still initiates events or holds participation requests.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.DB.ExecRowsContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if !database.IsForeignKeyViolation(err) {
			logger.Error("UserRepository:Delete", "id", id, "error", err)
		}
		return false, err
	}
	return affected > 0, nil
}
