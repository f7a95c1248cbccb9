package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/internal/models"
)

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

func (r *UserRepo) Insert(ctx context.Context, user models.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) SetVerification(ctx context.Context, id bson.ObjectID, status string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "role": models.RoleCollege},
		bson.M{"$set": bson.M{"verification_status": status, "updated_at": time.Now().UTC()}},
	)
	return err
}

// ListColleges returns approved colleges for student browsing.
func (r *UserRepo) ListColleges(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{
		"role":                models.RoleCollege,
		"verification_status": models.VerificationApproved,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var colleges []models.User
	if err := cursor.All(ctx, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}
