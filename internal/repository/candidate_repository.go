package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type CandidateRepository struct {
	col *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{col: db.Collection("candidates")}
}

func (r *CandidateRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, err
}

func (r *CandidateRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.Candidate, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var candidates []models.Candidate
	if err := cur.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *CandidateRepository) Insert(ctx context.Context, c models.Candidate) (models.Candidate, error) {
	c.ID = bson.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	_, err := r.col.InsertOne(ctx, c)
	return c, err
}

func (r *CandidateRepository) Update(ctx context.Context, c models.Candidate) error {
	c.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

// CountInPipeline counts candidates still moving through the pipeline for a
// posting; hired and rejected candidates do not block closing it.
func (r *CandidateRepository) CountInPipeline(ctx context.Context, jobPostingID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"job_posting_id": jobPostingID,
		"stage":          bson.M{"$nin": bson.A{models.StageHired, models.StageRejected}},
	})
}
