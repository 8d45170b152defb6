package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	"institusiku_backend/internals/constants"
	userModel "institusiku_backend/internals/features/users/user/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return nil, errors.New("unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("unauthorized")
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile: data user yang sedang login.
func (ctrl *UserController) Profile(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "Profile fetched", user)
}

type profileRequest struct {
	UserName  string `json:"user_name" form:"user_name" validate:"omitempty,max=120"`
	UserEmail string `json:"user_email" form:"user_email" validate:"omitempty,email"`
	UserPhone string `json:"user_phone" form:"user_phone" validate:"omitempty,max=20"`
}

// UpdateProfile: ubah nama/email/phone + foto profil opsional (multipart).
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid profile data")
	}

	updates := map[string]any{}
	if req.UserName != "" {
		updates["user_name"] = req.UserName
	}
	if req.UserEmail != "" {
		updates["user_email"] = req.UserEmail
	}
	if req.UserPhone != "" {
		updates["user_phone"] = req.UserPhone
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		if !constants.IsAllowedPhoto(file.Filename) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Only image files are allowed (png, jpg, jpeg, gif, webp)")
		}
		photo, err := helper.SavePhotoAsWebP(configs.UploadFolder, file)
		if err != nil {
			configs.LogError("users", "UpdateProfile", nil, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo")
		}
		updates["user_photo"] = photo
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", user)
	}
	if err := ctrl.DB.Model(user).Updates(updates).Error; err != nil {
		configs.LogError("users", "UpdateProfile", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated successfully!", user)
}

type settingsRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,min=1"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// UpdateSettings: ganti password. Wajib menyertakan password lama.
func (ctrl *UserController) UpdateSettings(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password must be at least 6 characters")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}
	if strings.TrimSpace(req.NewPassword) == req.CurrentPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password must be different")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		configs.LogError("users", "UpdateSettings", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	if err := ctrl.DB.Model(user).Update("user_password_hash", string(hash)).Error; err != nil {
		configs.LogError("users", "UpdateSettings", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password updated successfully!", nil)
}
