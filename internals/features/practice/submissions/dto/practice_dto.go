package dto

type SubmitPracticeRequest struct {
	QuestionID int64 `json:"question_id" validate:"required,gt=0"`
}
