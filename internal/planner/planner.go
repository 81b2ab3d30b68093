// Package planner はタスクストアと同期しながら、選択した日付のタスクを扱うクライアントです。
//
// 状態は3つあります: ストア (正)、メモリ上の一覧、ローカルキャッシュ。
// 同期は一方向で、ストア → メモリ → キャッシュの順に反映します。
package planner

import (
	"context"
	"log/slog"
	"time"

	"daily-planner/internal/models"
)

// TaskAPI はタスクストアへの操作です。
type TaskAPI interface {
	List(ctx context.Context, date string) ([]models.Task, error)
	Create(ctx context.Context, req models.CreateTaskRequest) error
	Delete(ctx context.Context, id string) error
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error)
}

// Draft は入力フォームの状態です。
type Draft struct {
	Todo      string
	StartTime string
	EndTime   string
	Priority  models.Priority
}

// DefaultDraft は入力フォームの初期値を返します。
func DefaultDraft() Draft {
	return Draft{
		StartTime: "00:00",
		EndTime:   "00:00",
		Priority:  models.PriorityMedium,
	}
}

// Planner は選択中の日付とメモリ上のタスク一覧を保持します。
// 並行に使用することは想定していません。
type Planner struct {
	api    TaskAPI
	cache  Cache
	logger *slog.Logger

	date  time.Time
	tasks []models.Task
	draft Draft
}

// New は新しいPlannerを作成します。選択日付の初期値は now です。
func New(api TaskAPI, cache Cache, logger *slog.Logger, now time.Time) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		api:    api,
		cache:  cache,
		logger: logger,
		date:   now,
		tasks:  []models.Task{},
		draft:  DefaultDraft(),
	}
}

// Initialize はキャッシュがあればそれを初期状態として読み込み、ストアには問い合わせません。
// キャッシュがない場合のみ取得します。
func (p *Planner) Initialize(ctx context.Context) error {
	cached, ok, err := p.cache.Load()
	if err != nil {
		p.logger.Warn("failed to load cache", "error", err)
	}
	if ok {
		p.tasks = cached
		return nil
	}
	return p.fetch(ctx)
}

// SelectDate は日付を切り替え、一覧を取得し直します。
func (p *Planner) SelectDate(ctx context.Context, date time.Time) error {
	p.date = date
	return p.fetch(ctx)
}

// AddTask は選択中の日付にタスクを作成します。
// todo が空の場合は何もしません。作成に成功した場合のみフォームを初期値に戻します。
// 作成後の再取得に失敗してもフォームは初期値に戻ります。
func (p *Planner) AddTask(ctx context.Context, draft Draft) error {
	if models.IsBlank(draft.Todo) {
		return nil
	}

	err := p.api.Create(ctx, models.CreateTaskRequest{
		Date:      DateKey(p.date),
		Todo:      draft.Todo,
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
		Priority:  draft.Priority,
	})
	if err != nil {
		p.logger.Error("error adding task", "error", err)
		return err
	}
	p.draft = DefaultDraft()
	return p.fetch(ctx)
}

// DeleteTask はタスクを削除し、成功したらメモリ上からIDで取り除きます。再取得はしません。
func (p *Planner) DeleteTask(ctx context.Context, id string) error {
	if err := p.api.Delete(ctx, id); err != nil {
		p.logger.Error("error deleting task", "id", id, "error", err)
		return err
	}

	kept := make([]models.Task, 0, len(p.tasks))
	for _, t := range p.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	p.tasks = kept
	p.saveCache()
	return nil
}

// CompleteTask はタスクを完了にし、一覧を取得し直した上で index 番目の要素も完了にします。
// index は取得後の一覧の並びと一致する保証がなく、別のタスクを完了表示にすることがあります。
// 再取得に失敗した場合も、手元の一覧の index 番目は完了にしてから再取得のエラーを返します。
func (p *Planner) CompleteTask(ctx context.Context, id string, index int) error {
	if _, err := p.api.SetCompleted(ctx, id, true); err != nil {
		p.logger.Error("error completing task", "id", id, "error", err)
		return err
	}
	fetchErr := p.fetch(ctx)
	if index >= 0 && index < len(p.tasks) {
		p.tasks[index].Completed = true
		p.saveCache()
	}
	return fetchErr
}

// Visible は選択中の日付のタスクを返します。
func (p *Planner) Visible() []models.Task {
	return FilterByDate(p.tasks, p.date)
}

// Tasks はメモリ上のすべてのタスクのコピーを返します。
func (p *Planner) Tasks() []models.Task {
	out := make([]models.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Date は選択中の日付を返します。
func (p *Planner) Date() time.Time {
	return p.date
}

// Draft は入力フォームの状態を返します。
func (p *Planner) Draft() Draft {
	return p.draft
}

// SetDraft は入力フォームの状態を設定します。
func (p *Planner) SetDraft(d Draft) {
	p.draft = d
}

// fetch はストアから一覧を取得し、メモリとキャッシュを置き換えます。
// 失敗した場合は状態を変更しません。
func (p *Planner) fetch(ctx context.Context) error {
	tasks, err := p.api.List(ctx, DateKey(p.date))
	if err != nil {
		p.logger.Error("error fetching tasks", "error", err)
		return err
	}
	p.tasks = tasks
	p.saveCache()
	return nil
}

func (p *Planner) saveCache() {
	if err := p.cache.Save(p.tasks); err != nil {
		p.logger.Warn("failed to save cache", "error", err)
	}
}
