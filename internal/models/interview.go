package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

type Interview struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID     bson.ObjectID `bson:"company_id" json:"company_id"`
	CandidateID   bson.ObjectID `bson:"candidate_id" json:"candidate_id"`
	InterviewerID bson.ObjectID `bson:"interviewer_id" json:"interviewer_id"`
	ScheduledAt   time.Time     `bson:"scheduled_at" json:"scheduled_at"`
	Type          string        `bson:"type,omitempty" json:"type,omitempty"`
	Feedback      string        `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Status        string        `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (i Interview) Tenant() bson.ObjectID { return i.CompanyID }
