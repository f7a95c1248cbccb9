package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartscholar/dto"
	"smartscholar/internal/models"
)

type RegistrationRepo struct {
	col *mongo.Collection
}

func NewRegistrationRepo(db *mongo.Database) *RegistrationRepo {
	return &RegistrationRepo{col: db.Collection("event_registrations")}
}

func (r *RegistrationRepo) Insert(ctx context.Context, reg models.EventRegistration) error {
	_, err := r.col.InsertOne(ctx, reg)
	return err
}

func (r *RegistrationRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) FindByEventAndStudent(ctx context.Context, eventID, studentID bson.ObjectID) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.col.FindOne(ctx, bson.M{"event_id": eventID, "student_id": studentID}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// SetReview records a review decision. Approvals clear any previous
// rejection reason.
func (r *RegistrationRepo) SetReview(ctx context.Context, id bson.ObjectID, status string, reviewedBy bson.ObjectID, reviewedAt time.Time, rejectionReason string) error {
	set := bson.M{
		"status":      status,
		"reviewed_by": reviewedBy,
		"reviewed_at": reviewedAt,
		"updated_at":  reviewedAt,
	}
	update := bson.M{"$set": set}
	if status == models.RegistrationRejected {
		set["rejection_reason"] = rejectionReason
	} else {
		update["$unset"] = bson.M{"rejection_reason": ""}
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *RegistrationRepo) SetPayment(ctx context.Context, id bson.ObjectID, status, transactionID string) error {
	set := bson.M{
		"payment_status": status,
		"updated_at":     time.Now().UTC(),
	}
	if transactionID != "" {
		set["transaction_id"] = transactionID
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *RegistrationRepo) ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.EventRegistration, error) {
	cursor, err := r.col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []models.EventRegistration
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByEvent returns one page of an event's registrations plus the total
// match count for pagination.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID bson.ObjectID, q dto.ApplicationListQuery) ([]models.EventRegistration, int, error) {
	filter := bson.M{"event_id": eventID}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.PaymentStatus != "" {
		filter["payment_status"] = q.PaymentStatus
	}
	if q.IsTeamRegistration != nil {
		filter["is_team_registration"] = *q.IsTeamRegistration
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((q.Page - 1) * q.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(q.Limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var regs []models.EventRegistration
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, 0, err
	}
	return regs, int(total), nil
}

// Stats aggregates counts over every registration of the event in a single
// pipeline pass.
func (r *RegistrationRepo) Stats(ctx context.Context, eventID bson.ObjectID) (dto.ApplicationStats, error) {
	countWhere := func(cond bson.M) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"event_id": eventID}}},
		{{Key: "$group", Value: bson.M{
			"_id":                nil,
			"total":              bson.M{"$sum": 1},
			"pending":            countWhere(bson.M{"$eq": bson.A{"$status", models.RegistrationPending}}),
			"approved":           countWhere(bson.M{"$eq": bson.A{"$status", models.RegistrationApproved}}),
			"rejected":           countWhere(bson.M{"$eq": bson.A{"$status", models.RegistrationRejected}}),
			"team_registrations": countWhere(bson.M{"$eq": bson.A{"$is_team_registration", true}}),
			"individual":         countWhere(bson.M{"$eq": bson.A{"$is_team_registration", false}}),
			"payments_completed": countWhere(bson.M{"$eq": bson.A{"$payment_status", models.PaymentCompleted}}),
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return dto.ApplicationStats{}, err
	}
	defer cursor.Close(ctx)

	var results []dto.ApplicationStats
	if err := cursor.All(ctx, &results); err != nil {
		return dto.ApplicationStats{}, err
	}
	if len(results) == 0 {
		return dto.ApplicationStats{}, nil
	}
	return results[0], nil
}
