package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartscholar/internal/models"
)

type CourseRepo struct {
	col *mongo.Collection
}

func NewCourseRepo(db *mongo.Database) *CourseRepo {
	return &CourseRepo{col: db.Collection("courses")}
}

func (r *CourseRepo) Insert(ctx context.Context, course models.Course) error {
	_, err := r.col.InsertOne(ctx, course)
	return err
}

func (r *CourseRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Course, error) {
	var course models.Course
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepo) Update(ctx context.Context, id bson.ObjectID, updates bson.M) error {
	if updates == nil {
		updates = bson.M{}
	}
	updates["updated_at"] = time.Now().UTC()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *CourseRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CourseRepo) List(ctx context.Context, collegeID *bson.ObjectID, level string) ([]models.Course, error) {
	filter := bson.M{}
	if collegeID != nil {
		filter["college_id"] = *collegeID
	}
	if level != "" {
		filter["level"] = level
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
