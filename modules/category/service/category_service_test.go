package service

import (
	"context"
	"testing"

	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/category/dto"
	"event-hub/modules/category/entity"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories map[int64]entity.Category
	used       map[int64]bool
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[int64]entity.Category{},
		used:       map[int64]bool{},
		nextID:     1,
	}
}

func (f *fakeCategoryRepo) nameTaken(name string, except int64) bool {
	for id, c := range f.categories {
		if c.Name == name && id != except {
			return true
		}
	}
	return false
}

func (f *fakeCategoryRepo) Create(_ context.Context, name string) (*entity.Category, error) {
	if f.nameTaken(name, 0) {
		return nil, &pq.Error{Code: "23505"}
	}
	c := entity.Category{ID: f.nextID, Name: name}
	f.nextID++
	f.categories[c.ID] = c
	return &c, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if f.nameTaken(category.Name, category.ID) {
		return &pq.Error{Code: "23505"}
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, from, size int) ([]entity.Category, error) {
	out := []entity.Category{}
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	if from >= len(out) {
		return []entity.Category{}, nil
	}
	out = out[from:]
	if len(out) > size {
		out = out[:size]
	}
	return out, nil
}

func (f *fakeCategoryRepo) IsUsedByEvents(_ context.Context, id int64) (bool, error) {
	return f.used[id], nil
}

type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func Test_CategoryService_CreateDuplicate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), inlineTx{})
	name := gofakeit.HipsterWord()

	_, appErr := svc.Create(context.Background(), &dto.CategoryRequest{Name: name})
	require.Nil(t, appErr)

	_, appErr = svc.Create(context.Background(), &dto.CategoryRequest{Name: name})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func Test_CategoryService_UpdateBlankNameKeepsCurrent(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), inlineTx{})
	created, appErr := svc.Create(context.Background(), &dto.CategoryRequest{Name: "Concerts"})
	require.Nil(t, appErr)

	updated, appErr := svc.Update(context.Background(), created.ID, &dto.UpdateCategoryRequest{Name: ""})
	require.Nil(t, appErr)
	assert.Equal(t, "Concerts", updated.Name)

	updated, appErr = svc.Update(context.Background(), created.ID, &dto.UpdateCategoryRequest{Name: "Theatre"})
	require.Nil(t, appErr)
	assert.Equal(t, "Theatre", updated.Name)
}

func Test_CategoryService_Update_Missing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), inlineTx{})
	_, appErr := svc.Update(context.Background(), 42, &dto.UpdateCategoryRequest{Name: "x"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func Test_CategoryService_DeleteUsedCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, inlineTx{})
	created, appErr := svc.Create(context.Background(), &dto.CategoryRequest{Name: "Sports"})
	require.Nil(t, appErr)

	repo.used[created.ID] = true
	appErr = svc.Delete(context.Background(), created.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)

	repo.used[created.ID] = false
	require.Nil(t, svc.Delete(context.Background(), created.ID))

	appErr = svc.Delete(context.Background(), created.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func Test_CategoryService_List(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), inlineTx{})
	for _, name := range []string{"a", "b", "c"} {
		_, appErr := svc.Create(context.Background(), &dto.CategoryRequest{Name: name})
		require.Nil(t, appErr)
	}

	list, appErr := svc.List(context.Background(), params.QueryParams{From: 1, Size: 1})
	require.Nil(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)
}
