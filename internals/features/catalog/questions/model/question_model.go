package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// QuestionType is stored by its enum name; JSON carries the display label.
type QuestionType string

const (
	QuestionTypeFunctionalReq    QuestionType = "FUNCTIONAL_REQ"
	QuestionTypeNonFunctionalReq QuestionType = "NON_FUNCTIONAL_REQ"
	QuestionTypeEntities         QuestionType = "ENTITIES"
	QuestionTypeAPI              QuestionType = "API"
	QuestionTypeHighLevelDesign  QuestionType = "HIGH_LEVEL_DESIGN"
	QuestionTypeDeepDive         QuestionType = "DEEP_DIVE"
)

var questionTypeLabels = map[QuestionType]string{
	QuestionTypeFunctionalReq:    "Functional Req",
	QuestionTypeNonFunctionalReq: "Non-Functional Req",
	QuestionTypeEntities:         "Entities",
	QuestionTypeAPI:              "API",
	QuestionTypeHighLevelDesign:  "High Level Design",
	QuestionTypeDeepDive:         "Deep Dive",
}

func (t QuestionType) Valid() bool {
	_, ok := questionTypeLabels[t]
	return ok
}

func (t QuestionType) Label() string {
	if label, ok := questionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t QuestionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

// UnmarshalJSON accepts either the enum name or the display label
// (seed fixtures use names, API payloads carry labels).
func (t *QuestionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if QuestionType(s).Valid() {
		*t = QuestionType(s)
		return nil
	}
	for name, label := range questionTypeLabels {
		if label == s {
			*t = name
			return nil
		}
	}
	return fmt.Errorf("unknown question type: %q", s)
}

type QuestionModel struct {
	QuestionID        int64        `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionMainID    int64        `gorm:"column:question_main_id;not null;index" json:"question_main_id"`
	Order             int          `gorm:"column:order;not null" json:"order"`
	Type              QuestionType `gorm:"column:type;type:varchar(50);not null" json:"type"`
	Name              string       `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Description       string       `gorm:"column:description;type:text;not null" json:"description"`
	WhiteboardSection int          `gorm:"column:whiteboard_section;not null" json:"whiteboard_section"`
	RequiresRecording bool         `gorm:"column:requires_recording;not null;default:false" json:"requires_recording"`
	CreatedAt         time.Time    `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (QuestionModel) TableName() string { return "question" }
