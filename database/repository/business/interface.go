package businessRepo

import (
	"context"
	"time"

	"dialvet/config"
	"dialvet/database"
	"dialvet/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BusinessRepository is the CRUD surface over survey records. Discount
// fields are only ever written through ApplySurveyResult; mid-call turns go
// through UpdateCallStatus alone.
type BusinessRepository interface {
	Create(ctx context.Context, biz models.Business) (string, error)
	BulkInsert(ctx context.Context, bizs []models.Business) (inserted int, skipped int, err error)
	GetAll(ctx context.Context) ([]models.Business, error)
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetByPhone(ctx context.Context, phone string) (*models.Business, error)
	Update(ctx context.Context, id string, upd models.BusinessUpdate) (*models.Business, error)
	UpdateCallStatus(ctx context.Context, id string, status models.CallStatus) error
	ApplySurveyResult(ctx context.Context, id string, res models.SurveyResult, calledAt time.Time) error
	SetRecordingURL(ctx context.Context, id string, url string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo returns a new BusinessRepository instance using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBusinessRepo{
		coll: db.Collection("businesses"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
