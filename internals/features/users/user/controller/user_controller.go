package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hellointerview_backend/internals/features/users/user/dto"
	"hellointerview_backend/internals/features/users/user/model"
	helper "hellointerview_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// isDuplicateKey detects a unique violation (SQLSTATE 23505) by message, so it
// works regardless of which driver wrapped the error.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

// POST /api/v1/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user := model.UserModel{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  strings.TrimSpace(req.Name),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("User with email %s already exists", user.Email))
		}
		log.Println("[ERROR] create user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GET /api/v1/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid value '%s' for parameter 'id'", raw))
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("User with id %d does not exist", id))
		}
		log.Println("[ERROR] fetch user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
