package services

import (
	"context"

	"daily-planner/internal/models"
	"daily-planner/internal/repositories"
)

// TaskService はタスクストアの操作を扱います。
// 保存されたものをそのまま返す以外の業務ルールは持ちません。
type TaskService struct {
	taskRepo repositories.TaskRepository
}

// NewTaskService は新しいTaskServiceを作成します。
func NewTaskService(taskRepo repositories.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List はすべてのタスクを返します。日付での絞り込みは呼び出し側の責務です。
func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

// Create は新しいタスクを未完了として保存します。
func (s *TaskService) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		Date:      req.Date,
		Todo:      req.Todo,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Priority:  req.Priority,
		Completed: false,
	}
	return s.taskRepo.Create(ctx, task)
}

// DeleteByID はタスクを削除します。存在しない場合は repositories.ErrTaskNotFound。
func (s *TaskService) DeleteByID(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

// SetCompleted は completed を指定値で上書きします。
// IDが存在しない場合は何もせず (nil, nil) を返します。
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	return s.taskRepo.UpdateCompleted(ctx, id, completed)
}

// Health はストアへの疎通を確認します。
func (s *TaskService) Health(ctx context.Context) error {
	return s.taskRepo.Ping(ctx)
}
