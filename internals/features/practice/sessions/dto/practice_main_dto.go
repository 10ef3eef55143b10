package dto

import (
	"time"

	"hellointerview_backend/internals/features/practice/sessions/model"
)

type CreatePracticeMainRequest struct {
	UserID         int64 `json:"user_id" validate:"required,gt=0"`
	QuestionMainID int64 `json:"question_main_id" validate:"required,gt=0"`
}

type UpdatePracticeMainStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=20"`
}

// PracticeMainResponse is the session plus its progress: the distinct
// question ids that already have at least one submitted practice.
type PracticeMainResponse struct {
	PracticeMainID           int64      `json:"practice_main_id"`
	UserID                   int64      `json:"user_id"`
	QuestionMainID           int64      `json:"question_main_id"`
	Status                   string     `json:"status"`
	StartedAt                time.Time  `json:"started_at"`
	CompletedAt              *time.Time `json:"completed_at"`
	QuestionIDsWithPractices []int64    `json:"question_ids_with_practices"`
}

func NewPracticeMainResponse(pm *model.PracticeMainModel, questionIDs []int64) *PracticeMainResponse {
	if questionIDs == nil {
		questionIDs = []int64{}
	}
	return &PracticeMainResponse{
		PracticeMainID:           pm.PracticeMainID,
		UserID:                   pm.UserID,
		QuestionMainID:           pm.QuestionMainID,
		Status:                   pm.Status,
		StartedAt:                pm.StartedAt,
		CompletedAt:              pm.CompletedAt,
		QuestionIDsWithPractices: questionIDs,
	}
}
