package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/internal/models"
)

type ScholarshipRepo struct {
	col *mongo.Collection
}

func NewScholarshipRepo(db *mongo.Database) *ScholarshipRepo {
	return &ScholarshipRepo{col: db.Collection("scholarship_calendar")}
}

func (r *ScholarshipRepo) Insert(ctx context.Context, entry models.ScholarshipEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *ScholarshipRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.ScholarshipEntry, error) {
	var entry models.ScholarshipEntry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Save replaces the whole entry; the service recomputes the derived
// status before every save.
func (r *ScholarshipRepo) Save(ctx context.Context, entry models.ScholarshipEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

func (r *ScholarshipRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ScholarshipRepo) List(ctx context.Context, level string, year int) ([]models.ScholarshipEntry, error) {
	filter := bson.M{}
	if level != "" {
		filter["level"] = level
	}
	if year != 0 {
		filter["year"] = year
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ScholarshipEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// OpeningSoon selects un-reminded upcoming entries whose opening date falls
// inside [from, to].
func (r *ScholarshipRepo) OpeningSoon(ctx context.Context, from, to time.Time) ([]models.ScholarshipEntry, error) {
	filter := bson.M{
		"status":        models.CalendarUpcoming,
		"reminder_sent": false,
		"opening_date":  bson.M{"$gte": from, "$lte": to},
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ScholarshipEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MarkReminded flips reminder_sent on every given entry in one update.
func (r *ScholarshipRepo) MarkReminded(ctx context.Context, ids []bson.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"reminder_sent": true, "updated_at": time.Now().UTC()}},
	)
	return err
}
