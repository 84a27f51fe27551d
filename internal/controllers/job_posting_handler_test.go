package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/dto"
	"talenthr/internal/models"
)

type fakeJobStore struct {
	jobs map[bson.ObjectID]models.JobPosting
}

func (f *fakeJobStore) FindByID(_ context.Context, id bson.ObjectID) (models.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return models.JobPosting{}, mongo.ErrNoDocuments
	}
	return j, nil
}

func (f *fakeJobStore) List(_ context.Context, companyID bson.ObjectID) ([]models.JobPosting, error) {
	out := []models.JobPosting{}
	for _, j := range f.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) Insert(_ context.Context, j models.JobPosting) (models.JobPosting, error) {
	j.ID = bson.NewObjectID()
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobStore) Update(_ context.Context, j models.JobPosting) error {
	f.jobs[j.ID] = j
	return nil
}

type fakePipeline map[bson.ObjectID]int64

func (f fakePipeline) CountInPipeline(_ context.Context, jobID bson.ObjectID) (int64, error) {
	return f[jobID], nil
}

func TestCreateJobPosting_StartsAsDraft(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	jobs := &fakeJobStore{jobs: map[bson.ObjectID]models.JobPosting{}}
	h := NewJobPostingHandler(jobs, &fakeDepartmentDir{}, fakePipeline{})

	app := newTestApp(viewer)
	app.Post("/jobs", h.CreateJobPosting)

	resp, err := app.Test(jsonReq(t, http.MethodPost, "/jobs", dto.JobPostingCreate{Title: "Backend Engineer"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got dto.JobPostingResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, models.JobDraft, got.Job.Status)
	assert.Equal(t, viewer.CompanyID, got.Job.CompanyID)
}

func TestDeleteJobPosting_BlockedByPipeline(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	job := models.JobPosting{ID: bson.NewObjectID(), CompanyID: viewer.CompanyID, Title: "Backend Engineer", Status: models.JobOpen}
	jobs := &fakeJobStore{jobs: map[bson.ObjectID]models.JobPosting{job.ID: job}}
	h := NewJobPostingHandler(jobs, &fakeDepartmentDir{}, fakePipeline{job.ID: 2})

	app := newTestApp(viewer)
	app.Delete("/jobs/:id", h.DeleteJobPosting)

	resp, err := app.Test(jsonReq(t, http.MethodDelete, "/jobs/"+job.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got dto.ErrorResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, "Cannot delete job posting. It has 2 candidate(s) in the pipeline. Please resolve them first.", got.Message)
	assert.Equal(t, models.JobOpen, jobs.jobs[job.ID].Status)
}

func TestDeleteJobPosting_ClosesWhenPipelineEmpty(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	job := models.JobPosting{ID: bson.NewObjectID(), CompanyID: viewer.CompanyID, Title: "Backend Engineer", Status: models.JobOpen}
	jobs := &fakeJobStore{jobs: map[bson.ObjectID]models.JobPosting{job.ID: job}}
	h := NewJobPostingHandler(jobs, &fakeDepartmentDir{}, fakePipeline{})

	app := newTestApp(viewer)
	app.Delete("/jobs/:id", h.DeleteJobPosting)

	resp, err := app.Test(jsonReq(t, http.MethodDelete, "/jobs/"+job.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.JobClosed, jobs.jobs[job.ID].Status)
}

func TestGetJobPosting_CrossTenant(t *testing.T) {
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	job := models.JobPosting{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Title: "Theirs", Status: models.JobOpen}
	jobs := &fakeJobStore{jobs: map[bson.ObjectID]models.JobPosting{job.ID: job}}
	h := NewJobPostingHandler(jobs, &fakeDepartmentDir{}, fakePipeline{})

	app := newTestApp(viewer)
	app.Get("/jobs/:id", h.GetJobPosting)

	resp, err := app.Test(jsonReq(t, http.MethodGet, "/jobs/"+job.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var got dto.ErrorResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, "Access denied", got.Message)
}
