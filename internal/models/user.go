package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles allowed to mutate HR resources. Plain employees get read access to
// their own records only.
const (
	RoleCompanyAdmin = "company_admin"
	RoleHRManager    = "hr_manager"
	RoleEmployee     = "employee"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID    bson.ObjectID `bson:"company_id" json:"company_id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	FirstName    string        `bson:"firstname" json:"firstname"`
	LastName     string        `bson:"lastname" json:"lastname"`
	Role         string        `bson:"role" json:"role"`
	Status       string        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (u User) Tenant() bson.ObjectID { return u.CompanyID }

func (u User) CanManage() bool {
	return u.Role == RoleCompanyAdmin || u.Role == RoleHRManager
}
