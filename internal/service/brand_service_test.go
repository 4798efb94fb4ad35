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

func newBrandService(seed ...model.Brand) service.BrandService {
	return service.NewBrandService(memory.NewBrandRepository(seed...))
}

func TestBrandCreateAndGetRoundTrip(t *testing.T) {
	svc := newBrandService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateBrandRequest{Name: "Acme", Image: "acme.png"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// reads are idempotent
	again, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestBrandCreateRejectsMissingFields(t *testing.T) {
	svc := newBrandService()
	_, err := svc.Create(context.Background(), dto.CreateBrandRequest{Name: "Acme"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestBrandGetByIDZeroIsBadRequest(t *testing.T) {
	svc := newBrandService()
	_, err := svc.GetByID(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestBrandGetByIDUnknownIsNotFound(t *testing.T) {
	svc := newBrandService()
	_, err := svc.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestBrandUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc := newBrandService(model.Brand{Name: "Acme", Image: "acme.png"})
	ctx := context.Background()

	newName := "Acme Corp"
	updated, err := svc.Update(ctx, 1, dto.UpdateBrandRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "acme.png", updated.Image) // untouched
}

func TestBrandUpdateRejectsEmptyName(t *testing.T) {
	svc := newBrandService(model.Brand{Name: "Acme", Image: "acme.png"})
	empty := ""
	_, err := svc.Update(context.Background(), 1, dto.UpdateBrandRequest{Name: &empty})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestBrandUpdateUnknownIsNotFound(t *testing.T) {
	svc := newBrandService()
	name := "Ghost"
	_, err := svc.Update(context.Background(), 7, dto.UpdateBrandRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestBrandDeleteThenGetIsNotFound(t *testing.T) {
	svc := newBrandService(model.Brand{Name: "Acme", Image: "acme.png"})
	ctx := context.Background()

	ok, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.GetByID(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))

	// second delete reports the entity as gone
	_, err = svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestBrandGetAllSkipsDeleted(t *testing.T) {
	svc := newBrandService(
		model.Brand{Name: "Acme", Image: "a.png"},
		model.Brand{Name: "Globex", Image: "g.png"},
	)
	ctx := context.Background()

	_, err := svc.Delete(ctx, 1)
	require.NoError(t, err)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Globex", list[0].Name)
}
