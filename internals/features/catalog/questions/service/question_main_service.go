package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/catalog/questions/model"
)

// GetQuestionMainByID fetches a question main with its full question sequence
// in one read, ordered by "order" ASC. Catalog content is managed out of band;
// no mutation path exists here.
func GetQuestionMainByID(db *gorm.DB, id int64) (*model.QuestionMainModel, error) {
	var qm model.QuestionMainModel
	err := db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(`"order" ASC`)
		}).
		First(&qm, "question_main_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("QuestionMain with id %d does not exist", id))
		}
		log.Println("[ERROR] fetch question_main:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question main")
	}
	if qm.Questions == nil {
		qm.Questions = []model.QuestionModel{}
	}
	return &qm, nil
}
