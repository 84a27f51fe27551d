package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type OTPRepository struct {
	col *mongo.Collection
}

func NewOTPRepository(db *mongo.Database) *OTPRepository {
	return &OTPRepository{col: db.Collection("otp_requests")}
}

// Replace drops any previous code for the address before storing the new
// one, so only the most recent OTP is ever valid.
func (r *OTPRepository) Replace(ctx context.Context, req models.OTPRequest) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"email": req.Email}); err != nil {
		return err
	}
	req.ID = bson.NewObjectID()
	req.CreatedAt = time.Now()
	_, err := r.col.InsertOne(ctx, req)
	return err
}

func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (models.OTPRequest, error) {
	var req models.OTPRequest
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&req)
	return req, err
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"email": email})
	return err
}
