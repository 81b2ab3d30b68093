package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"daily-planner/internal/models"
)

// MySQLTaskRepository が TaskRepository を満たすことを確認します。
var _ TaskRepository = (*MySQLTaskRepository)(nil)

// MySQLTaskRepository はMySQLの tasks テーブルを操作します。
type MySQLTaskRepository struct {
	DB *sql.DB
}

// NewMySQLTaskRepository は新しいMySQLTaskRepositoryを作成します。
func NewMySQLTaskRepository(db *sql.DB) *MySQLTaskRepository {
	return &MySQLTaskRepository{DB: db}
}

// Create はタスクを挿入します。IDはUUIDで採番します。
func (r *MySQLTaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	query := "INSERT INTO tasks (id, date, todo, start_time, end_time, priority, completed) VALUES (?, ?, ?, ?, ?, ?, ?)"

	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, query, id, t.Date, t.Todo, t.StartTime, t.EndTime, string(t.Priority), t.Completed)
	if err != nil {
		log.Printf("Failed to insert task: %v", err)
		return nil, fmt.Errorf("could not insert task: %w", err)
	}

	t.ID = id
	return t, nil
}

// FindAll はすべてのタスクを作成順に取得します。
func (r *MySQLTaskRepository) FindAll(ctx context.Context) ([]*models.Task, error) {
	query := "SELECT id, date, todo, start_time, end_time, priority, completed FROM tasks ORDER BY seq"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Failed to query tasks: %v", err)
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			log.Printf("Failed to scan task: %v", err)
			return nil, fmt.Errorf("could not scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// findByID は指定されたIDのタスクを取得します。
func (r *MySQLTaskRepository) findByID(ctx context.Context, id string) (*models.Task, error) {
	query := "SELECT id, date, todo, start_time, end_time, priority, completed FROM tasks WHERE id = ?"

	t, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		log.Printf("Failed to query task by ID: %v", err)
		return nil, fmt.Errorf("could not query task: %w", err)
	}
	return t, nil
}

// UpdateCompleted は completed を更新します。
// MySQLのRowsAffectedは値が変わらない行を数えないため、更新後に再取得して存在を判定します。
func (r *MySQLTaskRepository) UpdateCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	query := "UPDATE tasks SET completed = ? WHERE id = ?"

	if _, err := r.DB.ExecContext(ctx, query, completed, id); err != nil {
		log.Printf("Failed to update task: %v", err)
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	t, err := r.findByID(ctx, id)
	if errors.Is(err, ErrTaskNotFound) {
		return nil, nil
	}
	return t, err
}

// Delete は指定されたIDのタスクを削除します。
func (r *MySQLTaskRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM tasks WHERE id = ?"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Failed to delete task: %v", err)
		return fmt.Errorf("could not delete task: %w", err)
	}

	// 削除された行数を確認
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Ping はDB接続を確認します。
func (r *MySQLTaskRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (*models.Task, error) {
	var t models.Task
	var priority string
	if err := s.Scan(&t.ID, &t.Date, &t.Todo, &t.StartTime, &t.EndTime, &priority, &t.Completed); err != nil {
		return nil, err
	}
	t.Priority = models.Priority(priority)
	return &t, nil
}
