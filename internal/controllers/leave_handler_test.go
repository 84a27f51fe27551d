package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/dto"
	"talenthr/internal/models"
)

type fakeLeaveStore struct {
	leaves map[bson.ObjectID]models.LeaveRequest
}

func (f *fakeLeaveStore) FindByID(_ context.Context, id bson.ObjectID) (models.LeaveRequest, error) {
	l, ok := f.leaves[id]
	if !ok {
		return models.LeaveRequest{}, mongo.ErrNoDocuments
	}
	return l, nil
}

func (f *fakeLeaveStore) List(_ context.Context, companyID bson.ObjectID) ([]models.LeaveRequest, error) {
	out := []models.LeaveRequest{}
	for _, l := range f.leaves {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveStore) Insert(_ context.Context, l models.LeaveRequest) (models.LeaveRequest, error) {
	l.ID = bson.NewObjectID()
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveStore) Update(_ context.Context, l models.LeaveRequest) error {
	f.leaves[l.ID] = l
	return nil
}

type fakeEmployeeDir struct {
	employees map[bson.ObjectID]models.Employee
}

func (f *fakeEmployeeDir) FindByID(_ context.Context, id bson.ObjectID) (models.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return models.Employee{}, mongo.ErrNoDocuments
	}
	return e, nil
}

func TestCreateLeave_StartsPending(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleEmployee}
	emp := models.Employee{ID: bson.NewObjectID(), CompanyID: viewer.CompanyID, UserID: viewer.ID, Status: models.EmployeeActive}
	leaves := &fakeLeaveStore{leaves: map[bson.ObjectID]models.LeaveRequest{}}
	h := NewLeaveHandler(leaves, &fakeEmployeeDir{employees: map[bson.ObjectID]models.Employee{emp.ID: emp}})

	app := newTestApp(viewer)
	app.Post("/leaves", h.CreateLeave)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	body := dto.LeaveCreate{
		EmployeeID: emp.ID.Hex(),
		Type:       models.LeaveAnnual,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 4),
		Reason:     "Vacation",
	}
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/leaves", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got dto.LeaveResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, models.LeavePending, got.Leave.Status)
	assert.Equal(t, viewer.CompanyID, got.Leave.CompanyID)
}

func TestCreateLeave_EndBeforeStartRejected(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleEmployee}
	emp := models.Employee{ID: bson.NewObjectID(), CompanyID: viewer.CompanyID, Status: models.EmployeeActive}
	leaves := &fakeLeaveStore{leaves: map[bson.ObjectID]models.LeaveRequest{}}
	h := NewLeaveHandler(leaves, &fakeEmployeeDir{employees: map[bson.ObjectID]models.Employee{emp.ID: emp}})

	app := newTestApp(viewer)
	app.Post("/leaves", h.CreateLeave)

	start := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	body := dto.LeaveCreate{
		EmployeeID: emp.ID.Hex(),
		Type:       models.LeaveSick,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, -1),
	}
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/leaves", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, leaves.leaves)
}

func TestCreateLeave_InvalidEmployeeReference(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleEmployee}
	leaves := &fakeLeaveStore{leaves: map[bson.ObjectID]models.LeaveRequest{}}
	h := NewLeaveHandler(leaves, &fakeEmployeeDir{employees: map[bson.ObjectID]models.Employee{}})

	app := newTestApp(viewer)
	app.Post("/leaves", h.CreateLeave)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	body := dto.LeaveCreate{
		EmployeeID: bson.NewObjectID().Hex(),
		Type:       models.LeaveAnnual,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 1),
	}
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/leaves", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got dto.ErrorResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, "Invalid employee", got.Message)
}

func TestUpdateLeave_ApprovalRecordsDecider(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	leave := models.LeaveRequest{
		ID:         bson.NewObjectID(),
		CompanyID:  viewer.CompanyID,
		EmployeeID: bson.NewObjectID(),
		Type:       models.LeaveAnnual,
		StartDate:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Status:     models.LeavePending,
	}
	leaves := &fakeLeaveStore{leaves: map[bson.ObjectID]models.LeaveRequest{leave.ID: leave}}
	h := NewLeaveHandler(leaves, &fakeEmployeeDir{})

	app := newTestApp(viewer)
	app.Put("/leaves/:id", h.UpdateLeave)

	approved := models.LeaveApproved
	resp, err := app.Test(jsonReq(t, http.MethodPut, "/leaves/"+leave.ID.Hex(), dto.LeaveUpdate{Status: &approved}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got := leaves.leaves[leave.ID]
	assert.Equal(t, models.LeaveApproved, got.Status)
	assert.Equal(t, viewer.ID, got.DecidedBy)
	assert.Equal(t, leave.StartDate, got.StartDate, "dates untouched by a status-only update")
}

func TestUpdateLeave_EndBeforeStartRejected(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	leave := models.LeaveRequest{
		ID:        bson.NewObjectID(),
		CompanyID: viewer.CompanyID,
		Type:      models.LeaveAnnual,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Status:    models.LeavePending,
	}
	leaves := &fakeLeaveStore{leaves: map[bson.ObjectID]models.LeaveRequest{leave.ID: leave}}
	h := NewLeaveHandler(leaves, &fakeEmployeeDir{})

	app := newTestApp(viewer)
	app.Put("/leaves/:id", h.UpdateLeave)

	bad := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	resp, err := app.Test(jsonReq(t, http.MethodPut, "/leaves/"+leave.ID.Hex(), dto.LeaveUpdate{EndDate: &bad}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got dto.ErrorResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, "End date must not be before start date", got.Message)
	assert.Equal(t, leave.EndDate, leaves.leaves[leave.ID].EndDate)
}
