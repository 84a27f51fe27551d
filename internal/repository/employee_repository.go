package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection("employees")}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Employee, error) {
	var e models.Employee
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	return e, err
}

func (r *EmployeeRepository) FindByUser(ctx context.Context, userID bson.ObjectID) (models.Employee, error) {
	var e models.Employee
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&e)
	return e, err
}

func (r *EmployeeRepository) List(ctx context.Context, companyID bson.ObjectID) ([]models.Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var employees []models.Employee
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.ID = bson.NewObjectID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	_, err := r.col.InsertOne(ctx, e)
	return e, err
}

func (r *EmployeeRepository) Update(ctx context.Context, e models.Employee) error {
	e.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	return err
}

func (r *EmployeeRepository) CountActiveByDepartment(ctx context.Context, departmentID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"department_id": departmentID,
		"status":        models.EmployeeActive,
	})
}

func (r *EmployeeRepository) CountByCompany(ctx context.Context, companyID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"company_id": companyID})
}

// GroupCount aggregates employee counts for a tenant grouped by the given
// field, e.g. "status" or "department_id".
func (r *EmployeeRepository) GroupCount(ctx context.Context, companyID bson.ObjectID, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"company_id": companyID}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    bson.RawValue `bson:"_id"`
		Count int64         `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := ""
		switch row.ID.Type {
		case bson.TypeObjectID:
			oid, _ := row.ID.ObjectIDOK()
			key = oid.Hex()
		case bson.TypeString:
			key, _ = row.ID.StringValueOK()
		}
		if key == "" {
			key = "unassigned"
		}
		out[key] += row.Count
	}
	return out, nil
}
