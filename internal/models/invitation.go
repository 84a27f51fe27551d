package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationExpired  = "expired"
)

type Invitation struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID bson.ObjectID `bson:"company_id" json:"company_id"`
	Email     string        `bson:"email" json:"email"`
	Role      string        `bson:"role" json:"role"`
	Token     string        `bson:"token" json:"-"`
	InvitedBy bson.ObjectID `bson:"invited_by" json:"invited_by"`
	ExpiresAt time.Time     `bson:"expires_at" json:"expires_at"`
	Status    string        `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

func (i Invitation) Tenant() bson.ObjectID { return i.CompanyID }

// OTPRequest holds a pending self-service registration until the emailed
// code is verified.
type OTPRequest struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Email     string        `bson:"email" json:"email"`
	Code      string        `bson:"code" json:"-"`
	ExpiresAt time.Time     `bson:"expires_at" json:"expires_at"`
	Payload   bson.M        `bson:"payload,omitempty" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"-"`
}
