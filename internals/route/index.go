package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionRoutes "hellointerview_backend/internals/features/catalog/questions/route"
	practiceRoutes "hellointerview_backend/internals/features/practice/sessions/route"
	userRoutes "hellointerview_backend/internals/features/users/user/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	log.Println("[INFO] Mounting question catalog routes...")
	questionRoutes.QuestionMainRoutes(api, db)

	log.Println("[INFO] Mounting practice session routes...")
	practiceRoutes.PracticeMainRoutes(api, db)

	log.Println("[INFO] Mounting user routes...")
	userRoutes.UserRoutes(api, db)
}
