package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type InvitationRepository struct {
	col *mongo.Collection
}

func NewInvitationRepository(db *mongo.Database) *InvitationRepository {
	return &InvitationRepository{col: db.Collection("invitations")}
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (models.Invitation, error) {
	var inv models.Invitation
	err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(&inv)
	return inv, err
}

func (r *InvitationRepository) CountPendingByEmail(ctx context.Context, email string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"email":  email,
		"status": models.InvitationPending,
	})
}

func (r *InvitationRepository) Insert(ctx context.Context, inv models.Invitation) (models.Invitation, error) {
	inv.ID = bson.NewObjectID()
	inv.CreatedAt = time.Now()
	_, err := r.col.InsertOne(ctx, inv)
	return inv, err
}

func (r *InvitationRepository) SetStatus(ctx context.Context, id bson.ObjectID, status string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}
