package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	batchModel "institusiku_backend/internals/features/academics/batches/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

type batchRequest struct {
	BatchTitle     string `json:"batch_title" validate:"required,min=1,max=120"`
	BatchStartDate string `json:"batch_start_date" validate:"omitempty,datetime=2006-01-02"`
	BatchEndDate   string `json:"batch_end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GetAll: daftar batch + jumlah siswa per batch.
func (ctrl *BatchController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctrl.DB.Model(&batchModel.BatchModel{}).Count(&total).Error; err != nil {
		configs.LogError("batches", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batches")
	}

	var batches []batchModel.BatchModel
	if err := ctrl.DB.Order("batch_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&batches).Error; err != nil {
		configs.LogError("batches", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batches")
	}

	// Hitung siswa per batch sekali jalan.
	type batchCount struct {
		BatchID uuid.UUID
		Total   int64
	}
	var counts []batchCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_batch_id AS batch_id, COUNT(*) AS total").
		Where("student_batch_id IS NOT NULL").
		Group("student_batch_id").
		Scan(&counts).Error; err != nil {
		configs.LogError("batches", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batches")
	}
	countByID := make(map[uuid.UUID]int64, len(counts))
	for _, bc := range counts {
		countByID[bc.BatchID] = bc.Total
	}

	items := make([]fiber.Map, 0, len(batches))
	for _, b := range batches {
		items = append(items, fiber.Map{
			"batch_id":         b.BatchID,
			"batch_title":      b.BatchTitle,
			"batch_start_date": b.BatchStartDate,
			"batch_end_date":   b.BatchEndDate,
			"student_count":    countByID[b.BatchID],
		})
	}
	return helper.JsonList(c, "Batches fetched", items, helper.BuildPagination(p, total))
}

func (ctrl *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	return helper.JsonOK(c, "Batch fetched", batch)
}

func (ctrl *BatchController) Create(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch title is required")
	}

	batch := batchModel.BatchModel{
		BatchTitle:     req.BatchTitle,
		BatchStartDate: req.BatchStartDate,
		BatchEndDate:   req.BatchEndDate,
	}
	if err := ctrl.DB.Create(&batch).Error; err != nil {
		configs.LogError("batches", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.JsonCreated(c, "Batch added successfully!", batch)
}

func (ctrl *BatchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch title is required")
	}

	updates := map[string]any{
		"batch_title":      req.BatchTitle,
		"batch_start_date": req.BatchStartDate,
		"batch_end_date":   req.BatchEndDate,
	}
	if err := ctrl.DB.Model(&batch).Updates(updates).Error; err != nil {
		configs.LogError("batches", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update batch")
	}
	return helper.JsonUpdated(c, "Batch updated successfully!", batch)
}

func (ctrl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	if err := ctrl.DB.Delete(&batch).Error; err != nil {
		configs.LogError("batches", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete batch")
	}
	return helper.JsonDeleted(c, "Batch deleted successfully!", fiber.Map{"batch_id": id})
}
