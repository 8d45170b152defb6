package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	authService "institusiku_backend/internals/features/users/auth/service"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=60"`
	Password string `json:"password" validate:"required,min=1"`
}

// Login: verifikasi kredensial, terbitkan JWT (body + cookie).
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	user, err := authService.Authenticate(ctrl.DB, req.Username, req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := authService.IssueToken(user)
	if err != nil {
		configs.LogError("auth", "Login", req.Username, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"user_id":       user.UserID,
			"user_username": user.UserUsername,
			"user_name":     user.UserName,
			"user_role":     user.UserRole,
		},
	})
}

// Logout: hapus cookie token. Token stateless, sisi server tidak menyimpan sesi.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}
