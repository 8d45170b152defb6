package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

type facultyRequest struct {
	FacultyName       string          `json:"faculty_name" validate:"required,min=1,max=120"`
	FacultyPhone      string          `json:"faculty_phone" validate:"omitempty,max=20"`
	FacultyEmail      string          `json:"faculty_email" validate:"omitempty,email"`
	FacultySubject    string          `json:"faculty_subject" validate:"omitempty,max=120"`
	FacultyAddress    string          `json:"faculty_address"`
	FacultyHourlyRate decimal.Decimal `json:"faculty_hourly_rate"`
}

func (ctrl *FacultyController) GetAll(c *fiber.Ctx) error {
	var faculties []facultyModel.FacultyModel
	if err := ctrl.DB.Order("faculty_name ASC").Find(&faculties).Error; err != nil {
		configs.LogError("faculties", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch faculties")
	}
	return helper.JsonOK(c, "Faculties fetched", faculties)
}

func (ctrl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}
	var faculty facultyModel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}
	return helper.JsonOK(c, "Faculty fetched", faculty)
}

func (ctrl *FacultyController) Create(c *fiber.Ctx) error {
	var req facultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faculty name is required")
	}
	if req.FacultyHourlyRate.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hourly rate cannot be negative")
	}

	faculty := facultyModel.FacultyModel{
		FacultyName:       req.FacultyName,
		FacultyPhone:      req.FacultyPhone,
		FacultyEmail:      req.FacultyEmail,
		FacultySubject:    req.FacultySubject,
		FacultyAddress:    req.FacultyAddress,
		FacultyHourlyRate: req.FacultyHourlyRate,
	}
	if err := ctrl.DB.Create(&faculty).Error; err != nil {
		configs.LogError("faculties", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create faculty")
	}
	return helper.JsonCreated(c, "Faculty added successfully!", faculty)
}

func (ctrl *FacultyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}
	var faculty facultyModel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}

	var req facultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faculty name is required")
	}
	if req.FacultyHourlyRate.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hourly rate cannot be negative")
	}

	updates := map[string]any{
		"faculty_name":        req.FacultyName,
		"faculty_phone":       req.FacultyPhone,
		"faculty_email":       req.FacultyEmail,
		"faculty_subject":     req.FacultySubject,
		"faculty_address":     req.FacultyAddress,
		"faculty_hourly_rate": req.FacultyHourlyRate,
	}
	if err := ctrl.DB.Model(&faculty).Updates(updates).Error; err != nil {
		configs.LogError("faculties", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update faculty")
	}
	return helper.JsonUpdated(c, "Faculty updated successfully!", faculty)
}

func (ctrl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}
	var faculty facultyModel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}
	if err := ctrl.DB.Delete(&faculty).Error; err != nil {
		configs.LogError("faculties", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete faculty")
	}
	return helper.JsonDeleted(c, "Faculty deleted successfully!", fiber.Map{"faculty_id": id})
}
