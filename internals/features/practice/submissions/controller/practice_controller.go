package controller

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/practice/submissions/dto"
	"hellointerview_backend/internals/features/practice/submissions/service"
	helper "hellointerview_backend/internals/helpers"
)

type PracticeController struct {
	DB *gorm.DB
}

func NewPracticeController(db *gorm.DB) *PracticeController {
	return &PracticeController{DB: db}
}

var validate = validator.New()

func sessionIDParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid value '%s' for parameter 'id'", raw))
	}
	return id, nil
}

// POST /api/v1/practice-main/:id/practices
func (ctrl *PracticeController) Submit(c *fiber.Ctx) error {
	practiceMainID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req dto.SubmitPracticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	practice, err := service.SubmitPractice(ctrl.DB.WithContext(c.UserContext()), practiceMainID, req.QuestionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(practice)
}

// GET /api/v1/practice-main/:id/practices
func (ctrl *PracticeController) List(c *fiber.Ctx) error {
	practiceMainID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	practices, err := service.ListPractices(ctrl.DB.WithContext(c.UserContext()), practiceMainID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(practices)
}
