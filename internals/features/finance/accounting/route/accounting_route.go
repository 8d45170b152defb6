package route

import (
	accountingCtrl "institusiku_backend/internals/features/finance/accounting/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AccountingRoutes(api fiber.Router, db *gorm.DB) {
	ledger := accountingCtrl.NewLedgerController(db)

	groups := api.Group("/ledger-groups")
	groups.Get("/", ledger.GetGroups)
	groups.Post("/", ledger.CreateGroup)
	groups.Delete("/:id", ledger.DeleteGroup)

	ledgers := api.Group("/ledgers")
	ledgers.Get("/", ledger.GetLedgers)
	ledgers.Post("/", ledger.CreateLedger)
	ledgers.Put("/:id", ledger.UpdateLedger)
	ledgers.Delete("/:id", ledger.DeleteLedger)

	voucher := accountingCtrl.NewVoucherController(db)
	vouchers := api.Group("/vouchers")
	vouchers.Get("/", voucher.GetAll)
	vouchers.Post("/", voucher.Create)
	vouchers.Get("/:id", voucher.GetByID)
	vouchers.Get("/:id/print", voucher.Print)
	vouchers.Put("/:id", voucher.Update)
	vouchers.Delete("/:id", voucher.Delete)
}
