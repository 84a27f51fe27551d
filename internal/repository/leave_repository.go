package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type LeaveRepository struct {
	col *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{col: db.Collection("leave_requests")}
}

func (r *LeaveRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.LeaveRequest, error) {
	var l models.LeaveRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	return l, err
}

func (r *LeaveRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.LeaveRequest, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var leaves []models.LeaveRequest
	if err := cur.All(ctx, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *LeaveRepository) Insert(ctx context.Context, l models.LeaveRequest) (models.LeaveRequest, error) {
	l.ID = bson.NewObjectID()
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	_, err := r.col.InsertOne(ctx, l)
	return l, err
}

func (r *LeaveRepository) Update(ctx context.Context, l models.LeaveRequest) error {
	l.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	return err
}

func (r *LeaveRepository) CountPending(ctx context.Context, companyID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"status":     models.LeavePending,
	})
}
