// Package repositories はタスクの永続化を行うリポジトリを提供します。
package repositories

import (
	"context"
	"errors"

	"daily-planner/internal/models"
)

// ErrTaskNotFound は削除対象のタスクが存在しない場合のエラーです。
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository はタスクコレクションへの操作です。
// 各操作は単一レコードに対して独立して実行されます。
type TaskRepository interface {
	// FindAll はすべてのタスクを返します。順序は保証しません。
	FindAll(ctx context.Context) ([]*models.Task, error)
	// Create は新しいIDを採番してタスクを保存します。
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	// Delete は一致するタスクを削除します。一致しない場合は ErrTaskNotFound。
	Delete(ctx context.Context, id string) error
	// UpdateCompleted は completed を上書きし、更新後のタスクを返します。
	// 一致しない場合は (nil, nil) を返します。
	UpdateCompleted(ctx context.Context, id string, completed bool) (*models.Task, error)
	Ping(ctx context.Context) error
}
