package model

import (
	"time"
)

type QuestionMainModel struct {
	QuestionMainID int64     `gorm:"column:question_main_id;primaryKey;autoIncrement" json:"question_main_id"`
	Name           string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Description    *string   `gorm:"column:description;type:text" json:"description"`
	WriteUp        string    `gorm:"column:write_up;type:text;not null" json:"write_up"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	// Ordered by "order" ASC on the read path (see service.GetQuestionMainByID).
	Questions []QuestionModel `gorm:"foreignKey:QuestionMainID;references:QuestionMainID" json:"questions"`
}

func (QuestionMainModel) TableName() string { return "question_main" }
