package service

import (
	"context"

	"event-hub/core/constants"
	"event-hub/core/database"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/category/dto"
	"event-hub/modules/category/entity"
	"event-hub/modules/category/mapper"
	"event-hub/modules/category/repository"
)

type CategoryService struct {
	repo repository.CategoryRepositoryInterface
	tx   database.Transactor
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, *errors.AppError)
	Update(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, *errors.AppError)
	Delete(ctx context.Context, id int64) *errors.AppError
	GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, *errors.AppError)
	List(ctx context.Context, page params.QueryParams) ([]dto.CategoryResponse, *errors.AppError)
	Lookup(ctx context.Context, id int64) (*entity.Category, *errors.AppError)
}

func NewCategoryService(repo repository.CategoryRepositoryInterface, tx database.Transactor) *CategoryService {
	return &CategoryService{repo: repo, tx: tx}
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "category name already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create category failed", err)
	}
	return mapper.ToCategoryResponse(created), nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	category, appErr := s.Lookup(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if req.Name == "" || req.Name == category.Name {
		return mapper.ToCategoryResponse(category), nil
	}

	category.Name = req.Name
	if err := s.repo.Update(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "category name already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update category failed", err)
	}
	return mapper.ToCategoryResponse(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, appErr := s.Lookup(ctx, id); appErr != nil {
			return appErr
		}
		used, err := s.repo.IsUsedByEvents(ctx, id)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "check category usage failed", err)
		}
		if used {
			return errors.NewAppError(errors.ErrConflict, "category is used by events", nil)
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return errors.NewAppError(errors.ErrDeleteFailed, "delete category failed", err)
		}
		return nil
	})
	return errors.FromError(err)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	category, appErr := s.Lookup(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToCategoryResponse(category), nil
}

func (s *CategoryService) List(ctx context.Context, page params.QueryParams) ([]dto.CategoryResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	categories, err := s.repo.List(ctx, page.From, page.Size)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get categories failed", err)
	}
	return mapper.ToCategoryResponses(categories), nil
}

func (s *CategoryService) Lookup(ctx context.Context, id int64) (*entity.Category, *errors.AppError) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get category failed", err)
	}
	if category == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}
	return category, nil
}
