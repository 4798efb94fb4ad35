package service_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository/memory"
	"storefront/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubCategoryCreateRequiresExistingCategory(t *testing.T) {
	svc := service.NewSubCategoryService(
		memory.NewSubCategoryRepository(),
		memory.NewCategoryRepository(),
	)
	_, err := svc.Create(context.Background(), dto.CreateSubCategoryRequest{
		Name: "Audio", Image: "audio.png", CategoryID: 99,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestSubCategoryCreateRequiresCategoryID(t *testing.T) {
	svc := service.NewSubCategoryService(
		memory.NewSubCategoryRepository(),
		memory.NewCategoryRepository(),
	)
	_, err := svc.Create(context.Background(), dto.CreateSubCategoryRequest{
		Name: "Audio", Image: "audio.png",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestSubCategoryCreateUnderDeletedCategoryFails(t *testing.T) {
	categoryRepo := memory.NewCategoryRepository(model.Category{Name: "Electronics", Image: "e.png"})
	svc := service.NewSubCategoryService(memory.NewSubCategoryRepository(), categoryRepo)
	ctx := context.Background()

	_, err := categoryRepo.Delete(ctx, 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateSubCategoryRequest{Name: "Audio", Image: "audio.png", CategoryID: 1})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestSubCategoryMoveToMissingCategoryFails(t *testing.T) {
	categoryRepo := memory.NewCategoryRepository(model.Category{Name: "Electronics", Image: "e.png"})
	svc := service.NewSubCategoryService(
		memory.NewSubCategoryRepository(model.SubCategory{Name: "Audio", Image: "audio.png", CategoryID: 1}),
		categoryRepo,
	)

	missing := uint(5)
	_, err := svc.Update(context.Background(), 1, dto.UpdateSubCategoryRequest{CategoryID: &missing})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestSubCategoryGetByCategory(t *testing.T) {
	categoryRepo := memory.NewCategoryRepository(
		model.Category{Name: "Electronics", Image: "e.png"},
		model.Category{Name: "Home", Image: "h.png"},
	)
	svc := service.NewSubCategoryService(
		memory.NewSubCategoryRepository(
			model.SubCategory{Name: "Audio", Image: "a.png", CategoryID: 1},
			model.SubCategory{Name: "Kitchen", Image: "k.png", CategoryID: 2},
			model.SubCategory{Name: "Computing", Image: "c.png", CategoryID: 1},
		),
		categoryRepo,
	)

	list, err := svc.GetByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Audio", list[0].Name)
	assert.Equal(t, "Computing", list[1].Name)
}

func TestSubCategoryGetByMissingCategoryFails(t *testing.T) {
	svc := service.NewSubCategoryService(
		memory.NewSubCategoryRepository(),
		memory.NewCategoryRepository(),
	)
	_, err := svc.GetByCategory(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
