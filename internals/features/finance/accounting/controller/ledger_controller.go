package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	"institusiku_backend/internals/features/finance/accounting/dto"
	accountingModel "institusiku_backend/internals/features/finance/accounting/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type LedgerController struct {
	DB *gorm.DB
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{DB: db}
}

/* ===============================
   Ledger groups
=================================*/

func (ctrl *LedgerController) GetGroups(c *fiber.Ctx) error {
	var groups []accountingModel.LedgerGroupModel
	if err := ctrl.DB.Order("ledger_group_name ASC").Find(&groups).Error; err != nil {
		configs.LogError("accounting", "GetGroups", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledger groups")
	}
	return helper.JsonOK(c, "Ledger groups fetched", groups)
}

func (ctrl *LedgerController) CreateGroup(c *fiber.Ctx) error {
	var req dto.LedgerGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Group name is required")
	}
	group := accountingModel.LedgerGroupModel{LedgerGroupName: req.Name}
	if err := ctrl.DB.Create(&group).Error; err != nil {
		configs.LogError("accounting", "CreateGroup", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ledger group")
	}
	return helper.JsonCreated(c, "Ledger group added successfully!", group)
}

func (ctrl *LedgerController) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	var group accountingModel.LedgerGroupModel
	if err := ctrl.DB.First(&group, "ledger_group_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ledger group not found")
	}
	if err := ctrl.DB.Delete(&group).Error; err != nil {
		configs.LogError("accounting", "DeleteGroup", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ledger group")
	}
	return helper.JsonDeleted(c, "Ledger group deleted successfully!", fiber.Map{"ledger_group_id": id})
}

/* ===============================
   Ledgers
=================================*/

func (ctrl *LedgerController) GetLedgers(c *fiber.Ctx) error {
	var ledgers []accountingModel.LedgerModel
	if err := ctrl.DB.Order("ledger_name ASC").Find(&ledgers).Error; err != nil {
		configs.LogError("accounting", "GetLedgers", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledgers")
	}
	return helper.JsonOK(c, "Ledgers fetched", ledgers)
}

func (ctrl *LedgerController) CreateLedger(c *fiber.Ctx) error {
	var req dto.LedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ledger name is required")
	}

	ledger := accountingModel.LedgerModel{LedgerName: req.Name}
	if req.GroupID != "" {
		groupID, err := uuid.Parse(req.GroupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
		}
		var group accountingModel.LedgerGroupModel
		if err := ctrl.DB.First(&group, "ledger_group_id = ?", groupID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Ledger group not found")
		}
		ledger.LedgerGroupID = &groupID
	}

	if err := ctrl.DB.Create(&ledger).Error; err != nil {
		configs.LogError("accounting", "CreateLedger", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ledger")
	}
	return helper.JsonCreated(c, "Ledger added successfully!", ledger)
}

// resolveGroupUpdate menerjemahkan niat client atas kolom group:
// nil = biarkan, "" = lepas, uuid = pindah. Balikan kedua false bila
// tidak ada perubahan group yang diminta.
func resolveGroupUpdate(groupID *string) (*uuid.UUID, bool, error) {
	if groupID == nil {
		return nil, false, nil
	}
	if *groupID == "" {
		return nil, true, nil
	}
	id, err := uuid.Parse(*groupID)
	if err != nil {
		return nil, false, err
	}
	return &id, true, nil
}

// UpdateLedger: rename + pindah/lepas group.
func (ctrl *LedgerController) UpdateLedger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ledger id")
	}
	var ledger accountingModel.LedgerModel
	if err := ctrl.DB.First(&ledger, "ledger_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ledger not found")
	}

	var req dto.LedgerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name required")
	}

	updates := map[string]any{"ledger_name": req.Name}

	newGroup, changed, err := resolveGroupUpdate(req.GroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	if changed {
		if newGroup != nil {
			var group accountingModel.LedgerGroupModel
			if err := ctrl.DB.First(&group, "ledger_group_id = ?", *newGroup).Error; err != nil {
				return helper.JsonError(c, fiber.StatusNotFound, "Ledger group not found")
			}
		}
		updates["ledger_group_id"] = newGroup
	}

	if err := ctrl.DB.Model(&ledger).Updates(updates).Error; err != nil {
		configs.LogError("accounting", "UpdateLedger", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ledger")
	}
	return helper.JsonUpdated(c, "Ledger updated successfully!", ledger)
}

func (ctrl *LedgerController) DeleteLedger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ledger id")
	}
	var ledger accountingModel.LedgerModel
	if err := ctrl.DB.First(&ledger, "ledger_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ledger not found")
	}
	if err := ctrl.DB.Delete(&ledger).Error; err != nil {
		configs.LogError("accounting", "DeleteLedger", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ledger")
	}
	return helper.JsonDeleted(c, "Ledger deleted successfully!", fiber.Map{"ledger_id": id})
}
