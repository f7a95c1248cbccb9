package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartscholar/internal/models"
)

type SubscriptionRepo struct {
	subs      *mongo.Collection
	reminders *mongo.Collection
}

func NewSubscriptionRepo(db *mongo.Database) *SubscriptionRepo {
	return &SubscriptionRepo{
		subs:      db.Collection("subscriptions"),
		reminders: db.Collection("user_reminders"),
	}
}

func (r *SubscriptionRepo) Subscribe(ctx context.Context, email string) error {
	now := time.Now().UTC()
	_, err := r.subs.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{
			"$set":         bson.M{"active": true, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *SubscriptionRepo) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.subs.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}},
	)
	return err
}

// ActiveEmails returns every opted-in subscriber address.
func (r *SubscriptionRepo) ActiveEmails(ctx context.Context) ([]string, error) {
	cursor, err := r.subs.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(subs))
	for _, s := range subs {
		emails = append(emails, s.Email)
	}
	return emails, nil
}

// PendingReminders returns every per-scholarship reminder request that
// has not fired yet.
func (r *SubscriptionRepo) PendingReminders(ctx context.Context) ([]models.UserReminder, error) {
	cursor, err := r.reminders.Find(ctx, bson.M{"reminded": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.UserReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *SubscriptionRepo) MarkUserReminded(ctx context.Context, ids []bson.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.reminders.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"reminded": true}},
	)
	return err
}

// UpsertReminder records a per-scholarship reminder request, unique per
// (email, scholarship).
func (r *SubscriptionRepo) UpsertReminder(ctx context.Context, email string, scholarshipID bson.ObjectID, daysBefore int) error {
	_, err := r.reminders.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email), "scholarship_id": scholarshipID},
		bson.M{
			"$set":         bson.M{"reminder_days_before": daysBefore},
			"$setOnInsert": bson.M{"reminded": false, "created_at": time.Now().UTC()},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}
