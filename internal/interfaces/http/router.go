package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qlkp/reciclaje-api/internal/application/analytics"
	"github.com/qlkp/reciclaje-api/internal/application/auth"
	"github.com/qlkp/reciclaje-api/internal/application/ledger"
	"github.com/qlkp/reciclaje-api/internal/application/report"
	"github.com/qlkp/reciclaje-api/internal/application/usecase"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MaterialUC  *usecase.MaterialUseCase
	PartnerUC   *usecase.PartnerUseCase
	StaffUC     *usecase.StaffUseCase
	LedgerUC    *ledger.LedgerUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; el resto requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Materials (protegido; borrado y corrección de stock solo ADMIN)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)
	materials.Put("/:id/stock", adminOnly, materialHandler.CorrectStock)

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)
	partners.Delete("/:id", adminOnly, partnerHandler.Delete)

	// Transactions: el libro (protegido; borrado solo ADMIN)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Post("/import", transactionHandler.RecordImport)
	transactions.Post("/export", transactionHandler.RecordExport)
	transactions.Post("/production", transactionHandler.RecordProduction)
	transactions.Post("/expense", transactionHandler.RecordExpense)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.UpdateExpense)
	transactions.Delete("/:id", adminOnly, transactionHandler.Delete)

	// Staff (solo ADMIN)
	staff := protected.Group("/staff", adminOnly)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/chart", dashboardHandler.Chart)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/ledger.xlsx", reportHandler.LedgerXLSX)
	reports.Get("/cashflow.pdf", reportHandler.CashFlowPDF)
}
