package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type InterviewRepository struct {
	col *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) *InterviewRepository {
	return &InterviewRepository{col: db.Collection("interviews")}
}

func (r *InterviewRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Interview, error) {
	var i models.Interview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	return i, err
}

func (r *InterviewRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.Interview, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var interviews []models.Interview
	if err := cur.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepository) Insert(ctx context.Context, i models.Interview) (models.Interview, error) {
	i.ID = bson.NewObjectID()
	i.CreatedAt = time.Now()
	i.UpdatedAt = i.CreatedAt
	_, err := r.col.InsertOne(ctx, i)
	return i, err
}

func (r *InterviewRepository) Update(ctx context.Context, i models.Interview) error {
	i.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	return err
}

func (r *InterviewRepository) CountScheduledByCandidate(ctx context.Context, candidateID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"candidate_id": candidateID,
		"status":       models.InterviewScheduled,
	})
}
