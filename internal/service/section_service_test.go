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

func newSectionService(seed ...model.Section) service.SectionService {
	return service.NewSectionService(memory.NewSectionRepository(seed...))
}

func TestSectionCreateAndGetRoundTrip(t *testing.T) {
	svc := newSectionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateSectionRequest{Name: "featured"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSectionCreateRejectsEmptyName(t *testing.T) {
	svc := newSectionService()
	_, err := svc.Create(context.Background(), dto.CreateSectionRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestSectionGetByIDZeroIsBadRequest(t *testing.T) {
	svc := newSectionService()
	_, err := svc.GetByID(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestSectionGetByIDUnknownIsNotFound(t *testing.T) {
	svc := newSectionService()
	_, err := svc.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestSectionUpdateRejectsEmptyName(t *testing.T) {
	svc := newSectionService(model.Section{Name: "featured"})
	empty := ""
	_, err := svc.Update(context.Background(), 1, dto.UpdateSectionRequest{Name: &empty})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestSectionUpdateUnknownIsNotFound(t *testing.T) {
	svc := newSectionService()
	name := "clearance"
	_, err := svc.Update(context.Background(), 7, dto.UpdateSectionRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestSectionDeleteThenGetIsNotFound(t *testing.T) {
	svc := newSectionService(model.Section{Name: "featured"})
	ctx := context.Background()

	ok, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.GetByID(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
