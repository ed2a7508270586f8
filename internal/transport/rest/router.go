package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/usahaku/erp-dashboard/internal/dashboard"
	"github.com/usahaku/erp-dashboard/internal/employee"
	"github.com/usahaku/erp-dashboard/internal/finance"
	"github.com/usahaku/erp-dashboard/internal/inventory"
	"github.com/usahaku/erp-dashboard/internal/marketing"
	"github.com/usahaku/erp-dashboard/internal/production"
	"github.com/usahaku/erp-dashboard/internal/report"
	"github.com/usahaku/erp-dashboard/internal/sales"
	"github.com/usahaku/erp-dashboard/internal/tax"
	"github.com/usahaku/erp-dashboard/internal/transport/middleware"
	"github.com/usahaku/erp-dashboard/internal/transport/swagger"
)

// Handlers bundles every module handler the router mounts.
type Handlers struct {
	Production *production.Handler
	Inventory  *inventory.Handler
	Finance    *finance.Handler
	Sales      *sales.Handler
	Marketing  *marketing.Handler
	Employee   *employee.Handler
	Tax        *tax.Handler
	Dashboard  *dashboard.Handler
	Report     *report.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Dashboard != nil {
			r.Get("/dashboard/summary", handlers.Dashboard.GetSummary)
		}

		if handlers.Production != nil {
			r.Route("/production", func(pr chi.Router) {
				pr.Get("/", handlers.Production.ListRecords)
				pr.Post("/", handlers.Production.CreateRecord)
				pr.Get("/draft", handlers.Production.NewDraft)
				pr.Get("/{id}/draft", handlers.Production.EditDraft)
				pr.Put("/{id}", handlers.Production.UpdateRecord)
				pr.Delete("/{id}", handlers.Production.DeleteRecord)
			})
		}

		if handlers.Inventory != nil {
			r.Route("/inventory", func(ir chi.Router) {
				ir.Get("/", handlers.Inventory.ListItems)
				ir.Post("/", handlers.Inventory.CreateItem)
				ir.Get("/draft", handlers.Inventory.NewDraft)
				ir.Get("/{id}/draft", handlers.Inventory.EditDraft)
				ir.Put("/{id}", handlers.Inventory.UpdateItem)
				ir.Delete("/{id}", handlers.Inventory.DeleteItem)
			})
		}

		if handlers.Finance != nil {
			r.Route("/finance", func(fr chi.Router) {
				fr.Get("/", handlers.Finance.ListTransactions)
				fr.Post("/", handlers.Finance.CreateTransaction)
				fr.Get("/draft", handlers.Finance.NewDraft)
				fr.Get("/{id}/draft", handlers.Finance.EditDraft)
				fr.Put("/{id}", handlers.Finance.UpdateTransaction)
				fr.Delete("/{id}", handlers.Finance.DeleteTransaction)
			})
		}

		if handlers.Sales != nil {
			r.Route("/sales", func(sr chi.Router) {
				sr.Get("/", handlers.Sales.ListOrders)
				sr.Post("/", handlers.Sales.CreateOrder)
				sr.Get("/draft", handlers.Sales.NewDraft)
				sr.Get("/{id}/draft", handlers.Sales.EditDraft)
				sr.Put("/{id}", handlers.Sales.UpdateOrder)
				sr.Delete("/{id}", handlers.Sales.DeleteOrder)
			})
		}

		if handlers.Marketing != nil {
			r.Route("/marketing", func(mr chi.Router) {
				mr.Get("/", handlers.Marketing.ListCampaigns)
				mr.Post("/", handlers.Marketing.CreateCampaign)
				mr.Get("/draft", handlers.Marketing.NewDraft)
				mr.Get("/{id}/draft", handlers.Marketing.EditDraft)
				mr.Put("/{id}", handlers.Marketing.UpdateCampaign)
				mr.Delete("/{id}", handlers.Marketing.DeleteCampaign)
			})
		}

		if handlers.Employee != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", handlers.Employee.ListEmployees)
				er.Post("/", handlers.Employee.CreateEmployee)
				er.Get("/draft", handlers.Employee.NewDraft)
				er.Get("/{id}/draft", handlers.Employee.EditDraft)
				er.Put("/{id}", handlers.Employee.UpdateEmployee)
				er.Delete("/{id}", handlers.Employee.DeleteEmployee)
			})
		}

		if handlers.Tax != nil {
			r.Route("/tax", func(tr chi.Router) {
				tr.Get("/", handlers.Tax.ListRecords)
				tr.Post("/", handlers.Tax.CreateRecord)
				tr.Get("/draft", handlers.Tax.NewDraft)
				tr.Get("/{id}/draft", handlers.Tax.EditDraft)
				tr.Put("/{id}", handlers.Tax.UpdateRecord)
				tr.Delete("/{id}", handlers.Tax.DeleteRecord)
			})
		}

		if handlers.Report != nil {
			r.Route("/reports", func(rr chi.Router) {
				rr.Get("/", handlers.Report.ListReports)
				rr.Post("/{slug}/generate", handlers.Report.GenerateReport)
			})
		}
	})
}
