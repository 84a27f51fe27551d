package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	JobDraft  = "draft"
	JobOpen   = "open"
	JobClosed = "closed"
)

type SalaryRange struct {
	Min      float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max      float64 `bson:"max,omitempty" json:"max,omitempty"`
	Currency string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

type JobPosting struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID    bson.ObjectID `bson:"company_id" json:"company_id"`
	DepartmentID bson.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Requirements []string      `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Salary       SalaryRange   `bson:"salary_range,omitempty" json:"salary_range,omitempty"`
	Status       string        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (j JobPosting) Tenant() bson.ObjectID { return j.CompanyID }
