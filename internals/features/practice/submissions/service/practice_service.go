package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogModel "hellointerview_backend/internals/features/catalog/questions/model"
	sessionModel "hellointerview_backend/internals/features/practice/sessions/model"
	"hellointerview_backend/internals/features/practice/submissions/model"
)

// SubmitPractice records one answer under an active session. Archived sessions
// reject submissions: the active row is gone, so the lookup 404s.
func SubmitPractice(db *gorm.DB, practiceMainID, questionID int64) (*model.PracticeModel, error) {
	var pm sessionModel.PracticeMainModel
	if err := db.First(&pm, "practice_main_id = ?", practiceMainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("PracticeMain with id %d does not exist", practiceMainID))
		}
		log.Println("[ERROR] fetch practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session")
	}

	var count int64
	err := db.Model(&catalogModel.QuestionModel{}).
		Where("question_id = ? AND question_main_id = ?", questionID, pm.QuestionMainID).
		Count(&count).Error
	if err != nil {
		log.Println("[ERROR] check question membership:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to validate question")
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Question %d does not belong to question main %d", questionID, pm.QuestionMainID))
	}

	practice := model.PracticeModel{
		PracticeMainID: pm.PracticeMainID,
		QuestionID:     questionID,
	}
	if err := db.Create(&practice).Error; err != nil {
		log.Println("[ERROR] create practice:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record practice")
	}
	return &practice, nil
}

// ListPractices returns a session's submissions. Active sessions list live
// practice rows; archived sessions list history rows with any feedback the
// grading pipeline has attached.
func ListPractices(db *gorm.DB, practiceMainID int64) (interface{}, error) {
	var activeCount int64
	if err := db.Model(&sessionModel.PracticeMainModel{}).
		Where("practice_main_id = ?", practiceMainID).
		Count(&activeCount).Error; err != nil {
		log.Println("[ERROR] check practice_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session")
	}
	if activeCount > 0 {
		practices := []model.PracticeModel{}
		if err := db.Where("practice_main_id = ?", practiceMainID).
			Order("submitted_at ASC").
			Find(&practices).Error; err != nil {
			log.Println("[ERROR] list practices:", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list practices")
		}
		return practices, nil
	}

	var histCount int64
	if err := db.Model(&sessionModel.PracticeMainHistoryModel{}).
		Where("practice_main_id = ?", practiceMainID).
		Count(&histCount).Error; err != nil {
		log.Println("[ERROR] check practice_main_history:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch practice session history")
	}
	if histCount == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("PracticeMain with id %d does not exist", practiceMainID))
	}

	history := []model.PracticeHistoryModel{}
	if err := db.Preload("Feedback").
		Where("practice_main_id = ?", practiceMainID).
		Order("submitted_at ASC").
		Find(&history).Error; err != nil {
		log.Println("[ERROR] list practice history:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list practice history")
	}
	return history, nil
}
