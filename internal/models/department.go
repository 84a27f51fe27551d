package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DepartmentActive   = "active"
	DepartmentInactive = "inactive"
)

// Department name is unique per company among active departments (partial
// unique index, see database.EnsureIndexes). Delete flips Status to
// inactive; the record is retained.
type Department struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID          bson.ObjectID `bson:"company_id" json:"company_id"`
	Name               string        `bson:"name" json:"name"`
	Code               string        `bson:"code,omitempty" json:"code,omitempty"`
	Description        string        `bson:"description,omitempty" json:"description,omitempty"`
	ParentDepartmentID bson.ObjectID `bson:"parent_department_id,omitempty" json:"parent_department_id,omitempty"`
	ManagerID          bson.ObjectID `bson:"manager_id,omitempty" json:"manager_id,omitempty"`
	Budget             float64       `bson:"budget,omitempty" json:"budget,omitempty"`
	Location           string        `bson:"location,omitempty" json:"location,omitempty"`
	Status             string        `bson:"status" json:"status"`
	CreatedAt          time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (d Department) Tenant() bson.ObjectID { return d.CompanyID }
