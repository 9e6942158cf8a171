// File: services/call/bulk_test.go
package call

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dialvet/models"
)

func TestCallAllCountsPlacements(t *testing.T) {
	bizs := []models.Business{
		{ID: "b1", Phone: "+15550000001"},
		{ID: "b2", Phone: "+15550000002"},
		{ID: "b3", Phone: "+15550000003"},
	}

	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return(bizs, nil)
	repo.On("UpdateCallStatus", mock.Anything, mock.Anything, models.CallStatusCalling).Return(nil)

	tel := new(mockTelephony)
	tel.On("PlaceCall", mock.Anything, "+15550000001").Return("CA1", nil)
	tel.On("PlaceCall", mock.Anything, "+15550000002").Return("", errors.New("line busy"))
	tel.On("PlaceCall", mock.Anything, "+15550000003").Return("CA3", nil)

	svc := &DefaultCallService{Repo: repo, Telephony: tel}
	summary, err := svc.CallAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	tel.AssertExpectations(t)
}

func TestCallAllEmptyRoster(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return([]models.Business{}, nil)

	svc := &DefaultCallService{Repo: repo, Telephony: new(mockTelephony)}
	summary, err := svc.CallAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Successful)
	assert.Equal(t, 0, summary.Failed)
}

func TestCallAllListFailure(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("mongo down"))

	svc := &DefaultCallService{Repo: repo, Telephony: new(mockTelephony)}
	_, err := svc.CallAll(context.Background())
	assert.Error(t, err)
}

func TestCallAllSurvivesStatusWriteFailure(t *testing.T) {
	bizs := []models.Business{{ID: "b1", Phone: "+15550000001"}}

	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return(bizs, nil)
	repo.On("UpdateCallStatus", mock.Anything, "b1", models.CallStatusCalling).
		Return(errors.New("write failed"))

	tel := new(mockTelephony)
	tel.On("PlaceCall", mock.Anything, "+15550000001").Return("CA1", nil)

	svc := &DefaultCallService{Repo: repo, Telephony: tel}
	summary, err := svc.CallAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 0, summary.Failed)
}

func TestCallBusiness(t *testing.T) {
	biz := &models.Business{ID: "b1", Phone: "+15550000001"}

	repo := new(mockBusinessRepo)
	repo.On("GetByID", mock.Anything, "b1").Return(biz, nil)
	repo.On("UpdateCallStatus", mock.Anything, "b1", models.CallStatusCalling).Return(nil)

	tel := new(mockTelephony)
	tel.On("PlaceCall", mock.Anything, "+15550000001").Return("CA1", nil)

	svc := &DefaultCallService{Repo: repo, Telephony: tel}
	require.NoError(t, svc.CallBusiness(context.Background(), "b1"))
	tel.AssertExpectations(t)
}

func TestCallBusinessLookupFailure(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("not found"))

	svc := &DefaultCallService{Repo: repo, Telephony: new(mockTelephony)}
	err := svc.CallBusiness(context.Background(), "missing")
	assert.Error(t, err)
}
