package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/usahaku/erp-dashboard/internal/employee"
	"github.com/usahaku/erp-dashboard/internal/finance"
	"github.com/usahaku/erp-dashboard/internal/inventory"
	"github.com/usahaku/erp-dashboard/internal/marketing"
	"github.com/usahaku/erp-dashboard/internal/production"
	"github.com/usahaku/erp-dashboard/internal/sales"
	"github.com/usahaku/erp-dashboard/internal/tax"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGormDB(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			tables := []string{
				"production_records", "inventory_items", "finance_transactions",
				"sales_orders", "marketing_campaigns", "employees", "tax_records",
			}
			for _, table := range tables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		today := types.Today()
		lastMonth := types.DateOf(time.Now().AddDate(0, -1, 0))

		productionRows := []production.Record{
			{Reference: "PRD-1735689600000", ProductName: "Steel Frame A200", Quantity: 1200, Status: production.StatusCompleted, Date: lastMonth},
			{Reference: "PRD-1738368000000", ProductName: "Aluminum Panel B10", Quantity: 800, Status: production.StatusInProgress, Date: today},
			{Reference: "PRD-1738454400000", ProductName: "Copper Coil C35", Quantity: 500, Status: production.StatusPlanned, Date: today},
		}
		if err := db.Create(&productionRows).Error; err != nil {
			log.Fatalf("failed to seed production records: %v", err)
		}

		inventoryRows := []inventory.Item{
			{SKU: "SKU-1735689600001", Name: "Steel Sheet 2mm", Quantity: 450, Unit: "pcs", MinStock: 100, Location: "Warehouse A"},
			{SKU: "SKU-1735689600002", Name: "Hex Bolt M8", Quantity: 80, Unit: "box", MinStock: 120, Location: "Warehouse B"},
			{SKU: "SKU-1735689600003", Name: "Hydraulic Oil", Quantity: 60, Unit: "liter", MinStock: 40, Location: "Warehouse A"},
		}
		if err := db.Create(&inventoryRows).Error; err != nil {
			log.Fatalf("failed to seed inventory items: %v", err)
		}

		financeRows := []finance.Transaction{
			{Reference: "FIN-1735689600010", Type: finance.TypeIncome, Category: "Sales", Amount: 45000000, Description: "Invoice payment PT Maju", Date: lastMonth},
			{Reference: "FIN-1735689600011", Type: finance.TypeExpense, Category: "Raw Materials", Amount: 18500000, Description: "Steel supplier monthly", Date: lastMonth},
			{Reference: "FIN-1738368000012", Type: finance.TypeExpense, Category: "Utilities", Amount: 5200000, Description: "Factory electricity", Date: today},
		}
		if err := db.Create(&financeRows).Error; err != nil {
			log.Fatalf("failed to seed finance transactions: %v", err)
		}

		salesRows := []sales.Order{
			{Reference: "SO-1735689600020", CustomerName: "PT Maju Bersama", TotalAmount: 45000000, Status: sales.StatusDelivered, Date: lastMonth},
			{Reference: "SO-1738368000021", CustomerName: "CV Sumber Rejeki", TotalAmount: 28000000, Status: sales.StatusConfirmed, Date: today},
			{Reference: "SO-1738454400022", CustomerName: "PT Karya Utama", TotalAmount: 12500000, Status: sales.StatusPending, Date: today},
		}
		if err := db.Create(&salesRows).Error; err != nil {
			log.Fatalf("failed to seed sales orders: %v", err)
		}

		marketingRows := []marketing.Campaign{
			{Name: "Q1 Product Launch", Channel: marketing.ChannelDigital, Budget: 15000000, StartDate: lastMonth, EndDate: today, Status: marketing.StatusActive},
			{Name: "Trade Show Booth", Channel: marketing.ChannelOutdoor, Budget: 25000000, StartDate: today, EndDate: today, Status: marketing.StatusPlanned},
		}
		if err := db.Create(&marketingRows).Error; err != nil {
			log.Fatalf("failed to seed marketing campaigns: %v", err)
		}

		employeeRows := []employee.Employee{
			{EmployeeID: "EMP-1735689600030", Name: "Budi Santoso", Department: "Production", Position: "Line Supervisor", Email: "budi@usahaku.co.id", Phone: "+62-811-2345-001", HireDate: lastMonth},
			{EmployeeID: "EMP-1735689600031", Name: "Siti Rahayu", Department: "Finance", Position: "Accountant", Email: "siti@usahaku.co.id", Phone: "+62-811-2345-002", HireDate: lastMonth},
		}
		if err := db.Create(&employeeRows).Error; err != nil {
			log.Fatalf("failed to seed employees: %v", err)
		}

		taxRows := []tax.Record{
			{Reference: "TAX-1735689600040", Type: tax.TypePPN, Period: time.Now().AddDate(0, -1, 0).Format(tax.PeriodLayout), Amount: 4500000, Status: tax.StatusPaid, DueDate: lastMonth},
			{Reference: "TAX-1738368000041", Type: tax.TypePPh, Period: time.Now().Format(tax.PeriodLayout), Amount: 3200000, Status: tax.StatusPending, DueDate: today},
		}
		if err := db.Create(&taxRows).Error; err != nil {
			log.Fatalf("failed to seed tax records: %v", err)
		}

		fmt.Println("Seeded sample data for all modules")
	},
}
