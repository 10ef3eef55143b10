package model

import (
	"time"
)

// PracticeModel is one submitted answer inside an active session. Deleted
// together with its parent practice_main when the session is archived.
type PracticeModel struct {
	PracticeID     int64     `gorm:"column:practice_id;primaryKey;autoIncrement" json:"practice_id"`
	PracticeMainID int64     `gorm:"column:practice_main_id;not null;index" json:"practice_main_id"`
	QuestionID     int64     `gorm:"column:question_id;not null" json:"question_id"`
	SubmittedAt    time.Time `gorm:"column:submitted_at;not null;autoCreateTime" json:"submitted_at"`
}

func (PracticeModel) TableName() string { return "practice" }
