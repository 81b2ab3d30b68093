package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-planner/internal/models"
	"daily-planner/internal/repositories"
	"daily-planner/internal/services"
)

// failingRepo はすべての操作でストレージエラーを返します。
type failingRepo struct{ err error }

func (r failingRepo) FindAll(context.Context) ([]*models.Task, error) { return nil, r.err }
func (r failingRepo) Create(context.Context, *models.Task) (*models.Task, error) {
	return nil, r.err
}
func (r failingRepo) Delete(context.Context, string) error { return r.err }
func (r failingRepo) UpdateCompleted(context.Context, string, bool) (*models.Task, error) {
	return nil, r.err
}
func (r failingRepo) Ping(context.Context) error { return r.err }

func TestTaskService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTaskService(repositories.NewMemoryTaskRepository())

	created, err := svc.Create(ctx, &models.CreateTaskRequest{
		Date: "2024-05-01", Todo: "X", StartTime: "09:00", EndTime: "10:00", Priority: models.PriorityHigh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2024-05-01", tasks[0].Date)
	assert.Equal(t, "X", tasks[0].Todo)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)
}

func TestTaskService_ListEmptyIsNotNil(t *testing.T) {
	svc := services.NewTaskService(repositories.NewMemoryTaskRepository())

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_SetCompleted(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryTaskRepository()
	svc := services.NewTaskService(repo)

	created, err := svc.Create(ctx, &models.CreateTaskRequest{Date: "2024-05-01", Todo: "X"})
	require.NoError(t, err)

	t.Run("existing id flips only completed", func(t *testing.T) {
		updated, err := svc.SetCompleted(ctx, created.ID, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Completed)
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, created.Todo, updated.Todo)

		updated, err = svc.SetCompleted(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Completed)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		updated, err := svc.SetCompleted(ctx, "missing", true)
		assert.NoError(t, err)
		assert.Nil(t, updated)
		assert.Equal(t, 1, repo.Len())
	})
}

func TestTaskService_StorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection lost")
	svc := services.NewTaskService(failingRepo{err: boom})

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, &models.CreateTaskRequest{Date: "2024-05-01", Todo: "X"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.DeleteByID(ctx, "id"), boom)
	_, err = svc.SetCompleted(ctx, "id", true)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.Health(ctx), boom)
}
