package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	LeavePending   = "pending"
	LeaveApproved  = "approved"
	LeaveRejected  = "rejected"
	LeaveCancelled = "cancelled"
)

const (
	LeaveAnnual   = "annual"
	LeaveSick     = "sick"
	LeaveUnpaid   = "unpaid"
	LeaveParental = "parental"
)

type LeaveRequest struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID  bson.ObjectID `bson:"company_id" json:"company_id"`
	EmployeeID bson.ObjectID `bson:"employee_id" json:"employee_id"`
	Type       string        `bson:"type" json:"type"`
	StartDate  time.Time     `bson:"start_date" json:"start_date"`
	EndDate    time.Time     `bson:"end_date" json:"end_date"`
	Reason     string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Status     string        `bson:"status" json:"status"`
	DecidedBy  bson.ObjectID `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (l LeaveRequest) Tenant() bson.ObjectID { return l.CompanyID }
