package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"daily-planner/internal/models"
)

// Cache はクライアント側のタスク一覧のスナップショットです。
// 初回表示にのみ使用し、常にストアより古いものとして扱います。
type Cache interface {
	// Load はスナップショットを返します。存在しない場合 ok は false です。
	Load() (tasks []models.Task, ok bool, err error)
	// Save はスナップショット全体を上書きします。
	Save(tasks []models.Task) error
}

// FileCache はタスク配列をJSONとして1ファイルに保存します。
type FileCache struct {
	path string
}

// FileCache が Cache を満たすことを確認します。
var _ Cache = (*FileCache)(nil)

// NewFileCache は path に保存するFileCacheを作成します。ファイルは初回保存時に作成されます。
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Path はキャッシュファイルのパスを返します。
func (c *FileCache) Path() string {
	return c.path
}

func (c *FileCache) Load() ([]models.Task, bool, error) {
	content, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, false, fmt.Errorf("failed to parse cache: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, true, nil
}

func (c *FileCache) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	content, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
