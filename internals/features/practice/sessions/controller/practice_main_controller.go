package controller

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/practice/sessions/dto"
	"hellointerview_backend/internals/features/practice/sessions/service"
	helper "hellointerview_backend/internals/helpers"
)

type PracticeMainController struct {
	DB *gorm.DB
}

func NewPracticeMainController(db *gorm.DB) *PracticeMainController {
	return &PracticeMainController{DB: db}
}

var validate = validator.New()

func parseInt64(raw, name string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid value '%s' for parameter '%s'", raw, name))
	}
	return v, nil
}

// GET /api/v1/practice-main?user_id=&question_main_id=&status=
// status defaults to "practicing". Responds with the session plus progress.
func (ctrl *PracticeMainController) GetActive(c *fiber.Ctx) error {
	userID, err := parseInt64(c.Query("user_id"), "user_id")
	if err != nil {
		return err
	}
	questionMainID, err := parseInt64(c.Query("question_main_id"), "question_main_id")
	if err != nil {
		return err
	}

	resp, err := service.GetActiveWithProgress(ctrl.DB.WithContext(c.UserContext()), userID, questionMainID, c.Query("status"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// POST /api/v1/practice-main
func (ctrl *PracticeMainController) Create(c *fiber.Ctx) error {
	var req dto.CreatePracticeMainRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	pm, err := service.CreatePracticeMain(ctrl.DB.WithContext(c.UserContext()), req.UserID, req.QuestionMainID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(pm)
}

// PATCH /api/v1/practice-main/:id
// status "completed" triggers the archival path and is idempotent.
func (ctrl *PracticeMainController) UpdateStatus(c *fiber.Ctx) error {
	practiceMainID, err := parseInt64(c.Params("id"), "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePracticeMainStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	pm, err := service.UpdatePracticeMainStatus(ctrl.DB.WithContext(c.UserContext()), practiceMainID, req.Status)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(pm)
}
