// File: services/call/mocks_test.go
package call

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

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

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, transcript string, turn int) (*models.SurveyResult, error) {
	args := m.Called(ctx, transcript, turn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SurveyResult), args.Error(1)
}

type mockTelephony struct {
	mock.Mock
}

func (m *mockTelephony) PlaceCall(ctx context.Context, to string) (string, error) {
	args := m.Called(ctx, to)
	return args.String(0), args.Error(1)
}

func (m *mockTelephony) FetchRecording(ctx context.Context, callSid string) (string, error) {
	args := m.Called(ctx, callSid)
	return args.String(0), args.Error(1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueArchiveRecording(payload models.RecordingPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
