package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"daily-planner/internal/models"
)

// MemoryTaskRepository が TaskRepository を満たすことを確認します。
var _ TaskRepository = (*MemoryTaskRepository)(nil)

// MemoryTaskRepository はプロセス内のメモリにタスクを保持します。
// STORE_DRIVER=memory とテストで使用します。
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
}

// NewMemoryTaskRepository は空のMemoryTaskRepositoryを作成します。
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]models.Task)}
}

func (r *MemoryTaskRepository) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	r.tasks[t.ID] = *t
	r.order = append(r.order, t.ID)
	return t, nil
}

func (r *MemoryTaskRepository) FindAll(_ context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryTaskRepository) UpdateCompleted(_ context.Context, id string, completed bool) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	t.Completed = completed
	r.tasks[id] = t
	return &t, nil
}

func (r *MemoryTaskRepository) Ping(_ context.Context) error {
	return nil
}

// Len は保持しているタスク数を返します。
func (r *MemoryTaskRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
