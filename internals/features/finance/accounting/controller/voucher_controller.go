package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	counterService "institusiku_backend/internals/features/counters/service"
	"institusiku_backend/internals/features/finance/accounting/dto"
	accountingModel "institusiku_backend/internals/features/finance/accounting/model"
	accountingService "institusiku_backend/internals/features/finance/accounting/service"
	helper "institusiku_backend/internals/helpers"
)

type VoucherController struct {
	DB *gorm.DB
}

func NewVoucherController(db *gorm.DB) *VoucherController {
	return &VoucherController{DB: db}
}

// prepareLines menjalankan validasi, auto-alokasi kontra, dan cek balance.
// Mengembalikan baris final siap simpan.
func prepareLines(req *dto.VoucherRequest) ([]accountingModel.VoucherLine, error) {
	if err := accountingService.ValidateVoucherPayload(req.Date, req.Lines); err != nil {
		return nil, err
	}
	lines := accountingService.AutoAllocateContra(req.Type, req.Lines)
	if err := accountingService.CheckBalance(lines, req.AllowUnbalanced); err != nil {
		return nil, err
	}
	return lines, nil
}

func (ctrl *VoucherController) respondVoucherError(c *fiber.Ctx, err error) error {
	var unbalanced *accountingService.UnbalancedError
	if errors.As(err, &unbalanced) {
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest, "Debit and credit totals do not match", fiber.Map{
			"dr": unbalanced.Debit,
			"cr": unbalanced.Credit,
		})
	}
	return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
}

func (ctrl *VoucherController) Create(c *fiber.Ctx) error {
	var req dto.VoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if req.Type == "" {
		req.Type = accountingModel.VoucherTypeJournal
	}

	lines, err := prepareLines(&req)
	if err != nil {
		return ctrl.respondVoucherError(c, err)
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher lines")
	}

	voucher := accountingModel.VoucherModel{
		VoucherDate:      req.Date,
		VoucherType:      req.Type,
		VoucherNo:        req.VoucherNo,
		VoucherNarration: req.Narration,
		VoucherLines:     raw,
	}
	if voucher.VoucherNo == "" {
		// Nomor voucher sederhana dari sequence global.
		seq, err := counterService.NextSequence(ctrl.DB, "voucher_no")
		if err != nil {
			configs.LogError("accounting", "Create", req, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create voucher")
		}
		voucher.VoucherNo = fmt.Sprintf("V%05d", seq)
	}

	if err := ctrl.DB.Create(&voucher).Error; err != nil {
		configs.LogError("accounting", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create voucher")
	}
	return helper.JsonCreated(c, "Voucher added successfully!", voucher)
}

func (ctrl *VoucherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher id")
	}
	var voucher accountingModel.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Voucher not found")
	}

	var req dto.VoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if req.Type == "" {
		req.Type = voucher.VoucherType
	}

	lines, err := prepareLines(&req)
	if err != nil {
		return ctrl.respondVoucherError(c, err)
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher lines")
	}

	updates := map[string]any{
		"voucher_date":      req.Date,
		"voucher_type":      req.Type,
		"voucher_narration": req.Narration,
		"voucher_lines":     raw,
	}
	if req.VoucherNo != "" {
		updates["voucher_no"] = req.VoucherNo
	}
	if err := ctrl.DB.Model(&voucher).Updates(updates).Error; err != nil {
		configs.LogError("accounting", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update voucher")
	}
	return helper.JsonUpdated(c, "Voucher updated successfully!", voucher)
}

// searchPattern: term bebas → pola ILIKE, wildcard di-escape supaya
// "100%" mencari literal persen, bukan prefix match.
func searchPattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return "%" + s + "%"
}

// GetAll: daftar voucher, filter ?type=, rentang ?from=&to= (yyyy-mm-dd),
// dan ?search= atas nomor, narasi, dan nama akun di baris.
func (ctrl *VoucherController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)
	query := ctrl.DB.Model(&accountingModel.VoucherModel{})

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		query = query.Where("voucher_type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		pattern := searchPattern(s)
		query = query.Where(
			"voucher_no ILIKE ? OR voucher_narration ILIKE ? OR voucher_lines::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		query = query.Where("voucher_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		query = query.Where("voucher_date <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configs.LogError("accounting", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch vouchers")
	}

	var vouchers []accountingModel.VoucherModel
	if err := query.Order("voucher_date DESC, voucher_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&vouchers).Error; err != nil {
		configs.LogError("accounting", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch vouchers")
	}
	return helper.JsonList(c, "Vouchers fetched", vouchers, helper.BuildPagination(p, total))
}

func (ctrl *VoucherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher id")
	}
	var voucher accountingModel.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Voucher not found")
	}
	return helper.JsonOK(c, "Voucher fetched", voucher)
}

// Print: payload cetak voucher, termasuk total dr/cr dan terbilang.
func (ctrl *VoucherController) Print(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher id")
	}
	var voucher accountingModel.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Voucher not found")
	}

	var lines []accountingModel.VoucherLine
	if err := json.Unmarshal(voucher.VoucherLines, &lines); err != nil {
		configs.LogError("accounting", "Print", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read voucher lines")
	}
	debit, credit := accountingService.ComputeTotals(lines)

	return helper.JsonOK(c, "Voucher print data", fiber.Map{
		"voucher":         voucher,
		"lines":           lines,
		"total_debit":     debit,
		"total_credit":    credit,
		"amount_in_words": helper.AmountInWords(decimal.NewFromFloat(debit)),
	})
}

func (ctrl *VoucherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voucher id")
	}
	var voucher accountingModel.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Voucher not found")
	}
	if err := ctrl.DB.Delete(&voucher).Error; err != nil {
		configs.LogError("accounting", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete voucher")
	}
	return helper.JsonDeleted(c, "Voucher deleted successfully!", fiber.Map{"voucher_id": id})
}
