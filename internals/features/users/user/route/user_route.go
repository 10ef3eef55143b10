package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "hellointerview_backend/internals/features/users/user/controller"
)

func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	users := router.Group("/users")

	users.Post("/", ctrl.Create)
	users.Get("/:id", ctrl.GetByID)
}
