package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type JobPostingRepository struct {
	col *mongo.Collection
}

func NewJobPostingRepository(db *mongo.Database) *JobPostingRepository {
	return &JobPostingRepository{col: db.Collection("job_postings")}
}

func (r *JobPostingRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.JobPosting, error) {
	var j models.JobPosting
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	return j, err
}

func (r *JobPostingRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.JobPosting, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.JobPosting
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobPostingRepository) Insert(ctx context.Context, j models.JobPosting) (models.JobPosting, error) {
	j.ID = bson.NewObjectID()
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	_, err := r.col.InsertOne(ctx, j)
	return j, err
}

func (r *JobPostingRepository) Update(ctx context.Context, j models.JobPosting) error {
	j.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	return err
}

func (r *JobPostingRepository) CountOpen(ctx context.Context, companyID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"status":     models.JobOpen,
	})
}
