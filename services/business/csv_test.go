// File: services/business/csv_test.go
package business

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dialvet/models"
)

type mockBusinessRepo struct {
	mock.Mock
}

func (m *mockBusinessRepo) Create(ctx context.Context, biz models.Business) (string, error) {
	args := m.Called(ctx, biz)
	return args.String(0), args.Error(1)
}

func (m *mockBusinessRepo) BulkInsert(ctx context.Context, bizs []models.Business) (int, int, error) {
	args := m.Called(ctx, bizs)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *mockBusinessRepo) GetAll(ctx context.Context) ([]models.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Business), args.Error(1)
}

func (m *mockBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *mockBusinessRepo) GetByPhone(ctx context.Context, phone string) (*models.Business, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *mockBusinessRepo) Update(ctx context.Context, id string, upd models.BusinessUpdate) (*models.Business, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *mockBusinessRepo) UpdateCallStatus(ctx context.Context, id string, status models.CallStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBusinessRepo) ApplySurveyResult(ctx context.Context, id string, res models.SurveyResult, calledAt time.Time) error {
	args := m.Called(ctx, id, res, calledAt)
	return args.Error(0)
}

func (m *mockBusinessRepo) SetRecordingURL(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *mockBusinessRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestImportCSVNormalizesAndInserts(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("BulkInsert", mock.Anything, []models.Business{
		{Name: "Joe's Diner", Phone: "+15551234567", CallStatus: models.CallStatusPending},
		{Name: "Ace Hardware", Phone: "+15557654321", CallStatus: models.CallStatusPending},
	}).Return(2, 0, nil)

	svc := &DefaultBusinessService{Repo: repo}
	input := "name,phone\nJoe's Diner,(555) 123-4567\nAce Hardware,555-765-4321\n"
	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)
	assert.Empty(t, summary.Errors)
	repo.AssertExpectations(t)
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("BulkInsert", mock.Anything, []models.Business{
		{Name: "Joe's Diner", Phone: "+15551234567", CallStatus: models.CallStatusPending},
	}).Return(1, 0, nil)

	svc := &DefaultBusinessService{Repo: repo}
	input := "name,phone\n" +
		"Joe's Diner,5551234567\n" + // valid
		"X,5551234567\n" + // name too short
		"Ace Hardware,123\n" + // bad phone
		"lonely-field\n" // missing column
	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	require.Len(t, summary.Errors, 3)
	assert.Equal(t, 3, summary.Errors[0].Row)
	assert.Equal(t, 4, summary.Errors[1].Row)
	assert.Equal(t, 5, summary.Errors[2].Row)
	repo.AssertExpectations(t)
}

func TestImportCSVReportsDuplicatesAsSkipped(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("BulkInsert", mock.Anything, mock.Anything).Return(1, 1, nil)

	svc := &DefaultBusinessService{Repo: repo}
	input := "Joe's Diner,5551234567\nJoe's Other Diner,5551234567\n"
	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImportCSVBulkInsertFailure(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("BulkInsert", mock.Anything, mock.Anything).Return(0, 0, errors.New("mongo down"))

	svc := &DefaultBusinessService{Repo: repo}
	_, err := svc.ImportCSV(context.Background(), strings.NewReader("Joe's Diner,5551234567\n"))
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	called := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return([]models.Business{
		{
			Name:            "Joe's Diner",
			Phone:           "+15551234567",
			HasDiscount:     true,
			DiscountAmount:  "15%",
			DiscountDetails: "15% off with military ID",
			CallStatus:      models.CallStatusCompleted,
			LastCalled:      &called,
		},
		{
			Name:       "Ace Hardware",
			Phone:      "+15557654321",
			CallStatus: models.CallStatusPending,
		},
	}, nil)

	svc := &DefaultBusinessService{Repo: repo}
	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"name", "phone", "hasDiscount", "discountAmount", "discountDetails",
		"availabilityInfo", "eligibilityInfo", "callStatus", "lastCalled",
	}, records[0])
	assert.Equal(t, []string{
		"Joe's Diner", "+15551234567", "true", "15%", "15% off with military ID",
		"", "", "completed", "2026-08-15T10:30:00Z",
	}, records[1])
	assert.Equal(t, []string{
		"Ace Hardware", "+15557654321", "false", "", "", "", "", "pending", "",
	}, records[2])
}

func TestExportCSVListFailure(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("mongo down"))

	svc := &DefaultBusinessService{Repo: repo}
	var buf bytes.Buffer
	assert.Error(t, svc.ExportCSV(context.Background(), &buf))
}
