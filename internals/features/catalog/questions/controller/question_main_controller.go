package controller

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/catalog/questions/service"
)

type QuestionMainController struct {
	DB *gorm.DB
}

func NewQuestionMainController(db *gorm.DB) *QuestionMainController {
	return &QuestionMainController{DB: db}
}

// GET /api/v1/question-mains/:id
func (ctrl *QuestionMainController) GetByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid value '%s' for parameter 'id'", raw))
	}

	qm, err := service.GetQuestionMainByID(ctrl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(qm)
}
