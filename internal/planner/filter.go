package planner

import (
	"time"

	"daily-planner/internal/models"
)

// DateKey は日付を YYYY-MM-DD に変換します。
func DateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}

// FilterByDate は task.date が date と完全一致するタスクだけを返します。
// 一致しないタスクは表示されないだけで、元の一覧からは削除されません。
func FilterByDate(tasks []models.Task, date time.Time) []models.Task {
	key := DateKey(date)
	visible := []models.Task{}
	for _, t := range tasks {
		if t.Date == key {
			visible = append(visible, t)
		}
	}
	return visible
}
