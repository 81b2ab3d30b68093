package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-planner/internal/models"
	"daily-planner/internal/repositories"
)

// runTaskRepositoryContract はすべての実装が満たすべき振る舞いを検証します。
func runTaskRepositoryContract(t *testing.T, repo repositories.TaskRepository) {
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	tasks, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	a, err := repo.Create(ctx, &models.Task{Date: "2024-05-01", Todo: "A", StartTime: "09:00", EndTime: "10:00", Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	b, err := repo.Create(ctx, &models.Task{Date: "2024-05-02", Todo: "B"})
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID, "ids must be unique")

	t.Run("FindAll returns created tasks", func(t *testing.T) {
		tasks, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		byID := map[string]*models.Task{}
		for _, task := range tasks {
			byID[task.ID] = task
		}
		require.Contains(t, byID, a.ID)
		assert.Equal(t, "2024-05-01", byID[a.ID].Date)
		assert.Equal(t, "A", byID[a.ID].Todo)
		assert.Equal(t, "09:00", byID[a.ID].StartTime)
		assert.Equal(t, "10:00", byID[a.ID].EndTime)
		assert.Equal(t, models.PriorityHigh, byID[a.ID].Priority)
		assert.False(t, byID[a.ID].Completed)
	})

	t.Run("UpdateCompleted overwrites only completed", func(t *testing.T) {
		updated, err := repo.UpdateCompleted(ctx, a.ID, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Completed)
		assert.Equal(t, a.ID, updated.ID)
		assert.Equal(t, "A", updated.Todo)
		assert.Equal(t, "2024-05-01", updated.Date)

		// 同じ値での上書きも成功する
		updated, err = repo.UpdateCompleted(ctx, a.ID, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Completed)
	})

	t.Run("UpdateCompleted on missing id is a no-op", func(t *testing.T) {
		updated, err := repo.UpdateCompleted(ctx, missingID(repo), true)
		require.NoError(t, err)
		assert.Nil(t, updated)

		tasks, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("Delete on missing id returns ErrTaskNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, missingID(repo))
		assert.ErrorIs(t, err, repositories.ErrTaskNotFound)

		tasks, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("Delete removes exactly one task", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID))

		tasks, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, a.ID, tasks[0].ID)

		assert.ErrorIs(t, repo.Delete(ctx, b.ID), repositories.ErrTaskNotFound)
	})
}

// missingID は実装のID形式に合った、存在しないIDを返します。
func missingID(repo repositories.TaskRepository) string {
	if _, ok := repo.(*repositories.MongoTaskRepository); ok {
		return "000000000000000000000000"
	}
	return "00000000-0000-0000-0000-000000000000"
}

func TestMemoryTaskRepository(t *testing.T) {
	runTaskRepositoryContract(t, repositories.NewMemoryTaskRepository())
}

func TestMemoryTaskRepository_FindAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryTaskRepository()
	_, err := repo.Create(ctx, &models.Task{Date: "2024-05-01", Todo: "A"})
	require.NoError(t, err)

	tasks, err := repo.FindAll(ctx)
	require.NoError(t, err)
	tasks[0].Completed = true

	tasks, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)
}
