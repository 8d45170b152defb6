package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

type courseRequest struct {
	CourseName           string          `json:"course_name" validate:"required,min=1,max=120"`
	CourseFee            decimal.Decimal `json:"course_fee"`
	CourseDurationMonths int             `json:"course_duration_months" validate:"omitempty,min=0"`
	CourseHours          int             `json:"course_hours" validate:"omitempty,min=0"`
}

func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	if err := ctrl.DB.Order("course_name ASC").Find(&courses).Error; err != nil {
		configs.LogError("courses", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.JsonOK(c, "Courses fetched", courses)
}

func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonOK(c, "Course fetched", course)
}

func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course name is required")
	}
	if req.CourseFee.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course fee cannot be negative")
	}

	course := courseModel.CourseModel{
		CourseName:           req.CourseName,
		CourseFee:            req.CourseFee,
		CourseDurationMonths: req.CourseDurationMonths,
		CourseHours:          req.CourseHours,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		configs.LogError("courses", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course added successfully!", course)
}

func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course name is required")
	}
	if req.CourseFee.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course fee cannot be negative")
	}

	updates := map[string]any{
		"course_name":            req.CourseName,
		"course_fee":             req.CourseFee,
		"course_duration_months": req.CourseDurationMonths,
		"course_hours":           req.CourseHours,
	}
	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		configs.LogError("courses", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated successfully!", course)
}

func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	if err := ctrl.DB.Delete(&course).Error; err != nil {
		configs.LogError("courses", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Course deleted successfully!", fiber.Map{"course_id": id})
}
