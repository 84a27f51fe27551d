package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type DepartmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{col: db.Collection("departments")}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Department, error) {
	var d models.Department
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	return d, err
}

func (r *DepartmentRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.Department, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var departments []models.Department
	if err := cur.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *DepartmentRepository) Insert(ctx context.Context, d models.Department) (models.Department, error) {
	d.ID = bson.NewObjectID()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	_, err := r.col.InsertOne(ctx, d)
	return d, err
}

func (r *DepartmentRepository) Update(ctx context.Context, d models.Department) error {
	d.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	return err
}

// CountByName counts active same-tenant departments with the given name,
// excluding the one being mutated. Non-zero means a 409.
func (r *DepartmentRepository) CountByName(ctx context.Context, companyID bson.ObjectID, name string, exclude bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"name":       name,
		"status":     models.DepartmentActive,
		"_id":        bson.M{"$ne": exclude},
	})
}

func (r *DepartmentRepository) CountActiveChildren(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"parent_department_id": parentID,
		"status":               models.DepartmentActive,
	})
}
