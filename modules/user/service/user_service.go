package service

import (
	"context"

	"event-hub/core/constants"
	"event-hub/core/database"
	"event-hub/core/errors"
	"event-hub/core/logger"
	"event-hub/core/params"
	"event-hub/modules/user/dto"
	"event-hub/modules/user/entity"
	"event-hub/modules/user/mapper"
	"event-hub/modules/user/repository"
)

type UserService struct {
	repo repository.UserRepositoryInterface
}

type UserServiceInterface interface {
	Create(ctx context.Context, req *dto.NewUserRequest) (*dto.UserResponse, *errors.AppError)
	List(ctx context.Context, ids []int64, page params.QueryParams) ([]dto.UserResponse, *errors.AppError)
	Delete(ctx context.Context, id int64) *errors.AppError
	// Lookup is used by other modules to resolve a user reference.
	Lookup(ctx context.Context, id int64) (*entity.User, *errors.AppError)
}

func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, req *dto.NewUserRequest) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, mapper.ToUserEntity(req))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "user email already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	logger.Info("UserService:Create:Done", "user_id", created.ID)
	return mapper.ToUserResponse(created), nil
}

func (s *UserService) List(ctx context.Context, ids []int64, page params.QueryParams) ([]dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	users, err := s.repo.List(ctx, ids, page.From, page.Size)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get users failed", err)
	}
	return mapper.ToUserResponses(users), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			logger.Warn("UserService:Delete:Referenced", "user_id", id)
			return errors.NewAppError(errors.ErrConflict, "user has events or participation requests", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "delete user failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return nil
}

func (s *UserService) Lookup(ctx context.Context, id int64) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return user, nil
}
