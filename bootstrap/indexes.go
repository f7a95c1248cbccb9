package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique indexes the application relies on:
// one registration per (event, student), one calendar entry per
// (university, scholarship, opening date), one reminder per (email, scholarship).
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("event_registrations").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "event_id", Value: 1},
				{Key: "student_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_event_student"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("scholarship_calendar").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "university", Value: 1},
				{Key: "scholarship_name", Value: 1},
				{Key: "opening_date", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_university_scholarship_opening"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("user_reminders").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "scholarship_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_email_scholarship"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	return err
}
