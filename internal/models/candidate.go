package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

type Candidate struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID    bson.ObjectID `bson:"company_id" json:"company_id"`
	JobPostingID bson.ObjectID `bson:"job_posting_id" json:"job_posting_id"`
	FirstName    string        `bson:"firstname" json:"firstname"`
	LastName     string        `bson:"lastname" json:"lastname"`
	Email        string        `bson:"email" json:"email"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ResumeURL    string        `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	Stage        string        `bson:"stage" json:"stage"`
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (c Candidate) Tenant() bson.ObjectID { return c.CompanyID }
