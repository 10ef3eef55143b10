package model

import (
	"time"
)

const (
	StatusPracticing = "practicing"
	StatusCompleted  = "completed"
)

// PracticeMainModel is one active practice session. Completed sessions do not
// live here: completion moves the row (and its practices) to the history tables.
type PracticeMainModel struct {
	PracticeMainID int64      `gorm:"column:practice_main_id;primaryKey;autoIncrement" json:"practice_main_id"`
	UserID         int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	QuestionMainID int64      `gorm:"column:question_main_id;not null" json:"question_main_id"`
	Status         string     `gorm:"column:status;type:varchar(20);not null" json:"status"`
	StartedAt      time.Time  `gorm:"column:started_at;not null;autoCreateTime" json:"started_at"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (PracticeMainModel) TableName() string { return "practice_main" }
