package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"hellointerview_backend/internals/features/catalog/questions/model"
)

type questionSeed struct {
	Order             int                `json:"order"`
	Type              model.QuestionType `json:"type"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	WhiteboardSection int                `json:"whiteboard_section"`
	RequiresRecording bool               `json:"requires_recording"`
}

type questionMainSeed struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	WriteUp     string         `json:"write_up"`
	Questions   []questionSeed `json:"questions"`
}

// SeedQuestionMainsFromJSON loads the development catalog fixture. Skips
// entirely when the table already has rows; the catalog is managed out of
// band in real deployments.
func SeedQuestionMainsFromJSON(db *gorm.DB, filePath string) {
	var count int64
	if err := db.Model(&model.QuestionMainModel{}).Count(&count).Error; err != nil {
		log.Printf("[ERROR] seed: count question_main: %v", err)
		return
	}
	if count > 0 {
		log.Println("[INFO] seed: question_main not empty, skipping")
		return
	}

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[ERROR] seed: read %s: %v", filePath, err)
		return
	}

	var seeds []questionMainSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("[ERROR] seed: decode %s: %v", filePath, err)
		return
	}

	for _, seed := range seeds {
		qm := model.QuestionMainModel{
			Name:        seed.Name,
			Description: seed.Description,
			WriteUp:     seed.WriteUp,
		}
		for _, q := range seed.Questions {
			qm.Questions = append(qm.Questions, model.QuestionModel{
				Order:             q.Order,
				Type:              q.Type,
				Name:              q.Name,
				Description:       q.Description,
				WhiteboardSection: q.WhiteboardSection,
				RequiresRecording: q.RequiresRecording,
			})
		}
		if err := db.Create(&qm).Error; err != nil {
			log.Printf("[ERROR] seed: insert question_main %q: %v", seed.Name, err)
			return
		}
		log.Printf("[INFO] seed: question_main %q with %d questions", qm.Name, len(qm.Questions))
	}
}
