package model

import (
	"time"
)

// PracticeMainHistoryModel keeps the id of the active row it archives, so the
// primary key is NOT autoincrement. Rows are append-only.
type PracticeMainHistoryModel struct {
	PracticeMainID int64      `gorm:"column:practice_main_id;primaryKey;autoIncrement:false" json:"practice_main_id"`
	UserID         int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	QuestionMainID int64      `gorm:"column:question_main_id;not null" json:"question_main_id"`
	Status         string     `gorm:"column:status;type:varchar(20);not null" json:"status"`
	StartedAt      time.Time  `gorm:"column:started_at;not null" json:"started_at"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (PracticeMainHistoryModel) TableName() string { return "practice_main_history" }
