package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/internal/models"
)

type EventRepo struct {
	col *mongo.Collection
}

func NewEventRepo(db *mongo.Database) *EventRepo {
	return &EventRepo{col: db.Collection("events")}
}

func (r *EventRepo) Insert(ctx context.Context, event models.Event) error {
	_, err := r.col.InsertOne(ctx, event)
	return err
}

func (r *EventRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepo) Update(ctx context.Context, id bson.ObjectID, updates bson.M) error {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updated_at"] = time.Now().UTC()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *EventRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListPublished returns published events, optionally narrowed by type and
// a case-insensitive title search.
func (r *EventRepo) ListPublished(ctx context.Context, eventType, search string) ([]models.Event, error) {
	filter := bson.M{"status": models.EventPublished}
	if eventType != "" {
		filter["event_type"] = eventType
	}
	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepo) ListByCollege(ctx context.Context, collegeID bson.ObjectID) ([]models.Event, error) {
	cursor, err := r.col.Find(ctx, bson.M{"created_by": collegeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ClaimSeat atomically increments the participant counter while the event
// still has capacity (max_participants == 0 means unlimited). Returns false
// when no seat could be claimed.
func (r *EventRepo) ClaimSeat(ctx context.Context, id bson.ObjectID) (bool, error) {
	filter := bson.M{
		"_id": id,
		"$or": []bson.M{
			{"max_participants": 0},
			{"$expr": bson.M{"$lt": bson.A{"$current_participants", "$max_participants"}}},
		},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"current_participants": 1}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// ReleaseSeat decrements the participant counter, never below zero.
func (r *EventRepo) ReleaseSeat(ctx context.Context, id bson.ObjectID) error {
	filter := bson.M{"_id": id, "current_participants": bson.M{"$gt": 0}}
	_, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"current_participants": -1}})
	return err
}
