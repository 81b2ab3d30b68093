package planner_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-planner/internal/models"
	"daily-planner/internal/planner"
	"daily-planner/testutil"
)

func newTestClient(t *testing.T) *planner.Client {
	t.Helper()
	router, _ := testutil.SetupTestRouter(t)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return planner.NewClient(srv.URL+"/", 5*time.Second)
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	tasks, err := c.List(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	require.NoError(t, c.Create(ctx, models.CreateTaskRequest{
		Date:      "2024-05-01",
		Todo:      "write report",
		StartTime: "09:00",
		EndTime:   "10:00",
		Priority:  models.PriorityHigh,
	}))

	tasks, err = c.List(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	created := tasks[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "write report", created.Todo)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.False(t, created.Completed)

	updated, err := c.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, c.Delete(ctx, created.ID))

	tasks, err = c.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_ListIgnoresDate(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, c.Create(ctx, models.CreateTaskRequest{Date: "2024-05-01", Todo: "A"}))
	require.NoError(t, c.Create(ctx, models.CreateTaskRequest{Date: "2024-05-02", Todo: "B"}))

	tasks, err := c.List(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestClient_DeleteMissing(t *testing.T) {
	c := newTestClient(t)

	err := c.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, planner.ErrNotFound)
}

func TestClient_SetCompletedMissingReturnsNil(t *testing.T) {
	c := newTestClient(t)

	task, err := c.SetCompleted(context.Background(), "missing", true)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestClient_CreateRejected(t *testing.T) {
	c := newTestClient(t)

	err := c.Create(context.Background(), models.CreateTaskRequest{Date: "2024-05-01"})

	var statusErr *planner.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Contains(t, statusErr.Message, "Invalid request payload")
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database unavailable\n"))
	}))
	defer srv.Close()
	c := planner.NewClient(srv.URL, time.Second)

	_, err := c.List(context.Background(), "")

	var statusErr *planner.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "database unavailable", statusErr.Message)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := planner.NewClient(url, time.Second)

	_, err := c.List(context.Background(), "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, planner.ErrNotFound)
}
