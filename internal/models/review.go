package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ReviewDraft        = "draft"
	ReviewSubmitted    = "submitted"
	ReviewAcknowledged = "acknowledged"
)

type Goal struct {
	Title   string    `bson:"title" json:"title"`
	DueDate time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Done    bool      `bson:"done" json:"done"`
}

type Review struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID    bson.ObjectID `bson:"company_id" json:"company_id"`
	EmployeeID   bson.ObjectID `bson:"employee_id" json:"employee_id"`
	ReviewerID   bson.ObjectID `bson:"reviewer_id" json:"reviewer_id"`
	Period       string        `bson:"period" json:"period"`
	Rating       int           `bson:"rating,omitempty" json:"rating,omitempty"`
	Strengths    string        `bson:"strengths,omitempty" json:"strengths,omitempty"`
	Improvements string        `bson:"improvements,omitempty" json:"improvements,omitempty"`
	Goals        []Goal        `bson:"goals,omitempty" json:"goals,omitempty"`
	Status       string        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (r Review) Tenant() bson.ObjectID { return r.CompanyID }
