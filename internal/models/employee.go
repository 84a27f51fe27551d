package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EmployeeActive     = "active"
	EmployeeOnLeave    = "on-leave"
	EmployeeTerminated = "terminated"
	EmployeeResigned   = "resigned"
)

const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"
)

type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type EmergencyContact struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Relation string `bson:"relation,omitempty" json:"relation,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Employee links 1:1 to a User; the tenant is carried on the document as
// well so guards do not need a second lookup. Delete flips Status to
// terminated.
type Employee struct {
	ID             bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	CompanyID      bson.ObjectID    `bson:"company_id" json:"company_id"`
	UserID         bson.ObjectID    `bson:"user_id" json:"user_id"`
	DepartmentID   bson.ObjectID    `bson:"department_id,omitempty" json:"department_id,omitempty"`
	ManagerID      bson.ObjectID    `bson:"manager_id,omitempty" json:"manager_id,omitempty"`
	Position       string           `bson:"position" json:"position"`
	EmploymentType string           `bson:"employment_type" json:"employment_type"`
	HireDate       time.Time        `bson:"hire_date" json:"hire_date"`
	Salary         float64          `bson:"salary,omitempty" json:"salary,omitempty"`
	Contact        Contact          `bson:"contact,omitempty" json:"contact,omitempty"`
	Emergency      EmergencyContact `bson:"emergency_contact,omitempty" json:"emergency_contact,omitempty"`
	Status         string           `bson:"status" json:"status"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (e Employee) Tenant() bson.ObjectID { return e.CompanyID }
