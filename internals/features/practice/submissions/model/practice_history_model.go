package model

import (
	"time"
)

// PracticeHistoryModel mirrors a practice row after archival, keyed by the
// original practice_id and pointing at practice_main_history instead of
// practice_main.
type PracticeHistoryModel struct {
	PracticeID     int64     `gorm:"column:practice_id;primaryKey;autoIncrement:false" json:"practice_id"`
	PracticeMainID int64     `gorm:"column:practice_main_id;not null;index" json:"practice_main_id"`
	QuestionID     int64     `gorm:"column:question_id;not null" json:"question_id"`
	SubmittedAt    time.Time `gorm:"column:submitted_at;not null" json:"submitted_at"`

	// Written out of band by the grading pipeline; read-only here.
	Feedback []PracticeFeedbackHistoryModel `gorm:"foreignKey:PracticeID;references:PracticeID" json:"feedback,omitempty"`
}

func (PracticeHistoryModel) TableName() string { return "practice_history" }

type PracticeFeedbackHistoryModel struct {
	PracticeFeedbackID int64     `gorm:"column:practice_feedback_id;primaryKey;autoIncrement" json:"practice_feedback_id"`
	PracticeID         int64     `gorm:"column:practice_id;not null;index" json:"practice_id"`
	FeedbackText       string    `gorm:"column:feedback_text;type:text;not null" json:"feedback_text"`
	Score              *float64  `gorm:"column:score" json:"score"`
	GeneratedAt        time.Time `gorm:"column:generated_at;not null" json:"generated_at"`
}

func (PracticeFeedbackHistoryModel) TableName() string { return "practice_feedback_history" }
