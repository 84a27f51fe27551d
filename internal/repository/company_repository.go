package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection("companies")}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Company, error) {
	var c models.Company
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, err
}

func (r *CompanyRepository) Insert(ctx context.Context, c models.Company) (models.Company, error) {
	c.ID = bson.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	_, err := r.col.InsertOne(ctx, c)
	return c, err
}
