package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "hellointerview_backend/internals/features/catalog/questions/controller"
)

func QuestionMainRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionMainController(db)
	questionMains := router.Group("/question-mains")

	questionMains.Get("/:id", ctrl.GetByID)
}
