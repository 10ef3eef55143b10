package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "hellointerview_backend/internals/features/practice/sessions/controller"
	submissionController "hellointerview_backend/internals/features/practice/submissions/controller"
)

// PracticeMainRoutes mounts the session lifecycle plus its nested practice
// submission endpoints under /practice-main.
func PracticeMainRoutes(router fiber.Router, db *gorm.DB) {
	sessions := sessionController.NewPracticeMainController(db)
	practices := submissionController.NewPracticeController(db)

	practiceMain := router.Group("/practice-main")

	practiceMain.Get("/", sessions.GetActive)
	practiceMain.Post("/", sessions.Create)
	practiceMain.Patch("/:id", sessions.UpdateStatus)

	practiceMain.Post("/:id/practices", practices.Submit)
	practiceMain.Get("/:id/practices", practices.List)
}
