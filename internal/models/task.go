// Package modelsはTaskを定義します。
package models

import "strings"

// Priority はタスクの優先度です。
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid は既知の優先度かどうかを返します。
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task は1日の予定タスクです。作成後に変更できるのは Completed のみ。
type Task struct {
	ID        string   `json:"id" yaml:"id"`                                 // ストアが採番する不透明なID
	Date      string   `json:"date" yaml:"date"`                             // YYYY-MM-DD
	Todo      string   `json:"todo" yaml:"todo"`                             // タスク内容
	StartTime string   `json:"startTime" yaml:"startTime"`                   // HH:MM (表示用)
	EndTime   string   `json:"endTime" yaml:"endTime"`                       // HH:MM (表示用)
	Priority  Priority `json:"priority,omitempty" yaml:"priority,omitempty"` // low / medium / high
	Completed bool     `json:"completed" yaml:"completed"`                   // 完了状態
}

// CreateTaskRequest は POST /plan のリクエストボディです。
// completed は受け付けず、作成時は常に false になります。
type CreateTaskRequest struct {
	Date      string   `json:"date" binding:"required"`
	Todo      string   `json:"todo" binding:"required"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Priority  Priority `json:"priority,omitempty"` // 値は検証せずそのまま保存します
}

// UpdateCompletedRequest は PATCH /plan/:id のリクエストボディです。
type UpdateCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// IsBlank は todo が空白のみかどうかを返します。
func IsBlank(todo string) bool {
	return strings.TrimSpace(todo) == ""
}
