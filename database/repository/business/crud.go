package businessRepo

import (
	"context"
	"errors"
	"time"

	"dialvet/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no business matches the query.
var ErrNotFound = errors.New("business not found")

// Create inserts a new business record and returns its ID.
func (r *mongoBusinessRepo) Create(ctx context.Context, biz models.Business) (string, error) {
	if biz.ID == "" {
		biz.ID = uuid.New().String()
	}
	if biz.CallStatus == "" {
		biz.CallStatus = models.CallStatusPending
	}
	biz.CreatedAt = time.Now()
	biz.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, biz)
	if err != nil {
		return "", err
	}
	return biz.ID, nil
}

// BulkInsert inserts many businesses in one unordered write. Rows whose
// phone number already exists trip the unique index and are counted as
// skipped rather than failing the batch.
func (r *mongoBusinessRepo) BulkInsert(ctx context.Context, bizs []models.Business) (int, int, error) {
	if len(bizs) == 0 {
		return 0, 0, nil
	}

	docs := make([]interface{}, 0, len(bizs))
	for i := range bizs {
		if bizs[i].ID == "" {
			bizs[i].ID = uuid.New().String()
		}
		if bizs[i].CallStatus == "" {
			bizs[i].CallStatus = models.CallStatusPending
		}
		bizs[i].CreatedAt = time.Now()
		bizs[i].UpdatedAt = time.Now()
		docs = append(docs, bizs[i])
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) {
			for _, we := range bulkErr.WriteErrors {
				if !mongo.IsDuplicateKeyError(we.WriteError) {
					return inserted, len(bizs) - inserted, err
				}
			}
			// all failures were duplicates
			return inserted, len(bizs) - inserted, nil
		}
		return inserted, len(bizs) - inserted, err
	}
	return inserted, len(bizs) - inserted, nil
}

// GetAll returns every business record.
func (r *mongoBusinessRepo) GetAll(ctx context.Context) ([]models.Business, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bizs []models.Business
	if err := cursor.All(ctx, &bizs); err != nil {
		return nil, err
	}
	return bizs, nil
}

// GetByID returns a business by its ID.
func (r *mongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	var biz models.Business
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&biz)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

// GetByPhone returns the business holding the given canonical phone number.
func (r *mongoBusinessRepo) GetByPhone(ctx context.Context, phone string) (*models.Business, error) {
	var biz models.Business
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&biz)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

// Update applies a partial update and returns the updated record.
func (r *mongoBusinessRepo) Update(ctx context.Context, id string, upd models.BusinessUpdate) (*models.Business, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.HasDiscount != nil {
		set["hasDiscount"] = *upd.HasDiscount
	}
	if upd.DiscountAmount != nil {
		set["discountAmount"] = *upd.DiscountAmount
	}
	if upd.DiscountDetails != nil {
		set["discountDetails"] = *upd.DiscountDetails
	}
	if upd.AvailabilityInfo != nil {
		set["availabilityInfo"] = *upd.AvailabilityInfo
	}
	if upd.EligibilityInfo != nil {
		set["eligibilityInfo"] = *upd.EligibilityInfo
	}
	if upd.CallStatus != nil {
		set["callStatus"] = *upd.CallStatus
	}

	var biz models.Business
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&biz)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

// UpdateCallStatus moves a record through the call lifecycle without
// touching any discount field.
func (r *mongoBusinessRepo) UpdateCallStatus(ctx context.Context, id string, status models.CallStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"callStatus": status,
		"updatedAt":  time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplySurveyResult is the terminal-turn write: it persists the classified
// discount fields together with lastCalled and the completed status.
func (r *mongoBusinessRepo) ApplySurveyResult(ctx context.Context, id string, res models.SurveyResult, calledAt time.Time) error {
	set := bson.M{
		"hasDiscount":     res.HasDiscount,
		"discountAmount":  res.DiscountAmount,
		"discountDetails": res.DiscountDetails,
		"callStatus":      models.CallStatusCompleted,
		"lastCalled":      calledAt,
		"updatedAt":       time.Now(),
	}
	if res.AvailabilityInfo != "" {
		set["availabilityInfo"] = res.AvailabilityInfo
	}
	if res.EligibilityInfo != "" {
		set["eligibilityInfo"] = res.EligibilityInfo
	}

	out, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if out.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRecordingURL stores the archived recording location.
func (r *mongoBusinessRepo) SetRecordingURL(ctx context.Context, id string, url string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"recordingUrl": url,
		"updatedAt":    time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every record. This is the only deletion path.
func (r *mongoBusinessRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
