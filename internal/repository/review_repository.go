package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

func (r *ReviewRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Review, error) {
	var rv models.Review
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rv)
	return rv, err
}

func (r *ReviewRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, rv models.Review) (models.Review, error) {
	rv.ID = bson.NewObjectID()
	rv.CreatedAt = time.Now()
	rv.UpdatedAt = rv.CreatedAt
	_, err := r.col.InsertOne(ctx, rv)
	return rv, err
}

func (r *ReviewRepository) Update(ctx context.Context, rv models.Review) error {
	rv.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": rv.ID}, rv)
	return err
}
