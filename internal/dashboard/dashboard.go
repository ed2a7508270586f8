package dashboard

// KPIs are the headline numbers aggregated across the operational
// tables. Each value degrades to zero independently when its query
// fails so one broken table does not blank the whole dashboard.
type KPIs struct {
	ProductionOutput float64 `json:"production_output"`
	InventoryItems   int64   `json:"inventory_items"`
	SalesRevenue     float64 `json:"sales_revenue"`
	LowStockAlerts   int64   `json:"low_stock_alerts"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

type ProductionPoint struct {
	Week   string `json:"week"`
	Output int64  `json:"output"`
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Charts carries the trend series. Placeholder is true while the
// series are static samples rather than queries over live data.
type Charts struct {
	Placeholder        bool              `json:"placeholder"`
	RevenueVsExpense   []RevenuePoint    `json:"revenue_vs_expense"`
	WeeklyProduction   []ProductionPoint `json:"weekly_production"`
	StatusDistribution []StatusSlice     `json:"status_distribution"`
}

type Summary struct {
	KPIs   KPIs   `json:"kpis"`
	Charts Charts `json:"charts"`
}

// TODO: replace the static chart series with monthly rollups over
// finance_transactions and production_records once those tables carry
// enough history to chart.
func placeholderCharts() Charts {
	return Charts{
		Placeholder: true,
		RevenueVsExpense: []RevenuePoint{
			{Month: "Jan", Revenue: 850000000, Expense: 620000000},
			{Month: "Feb", Revenue: 920000000, Expense: 680000000},
			{Month: "Mar", Revenue: 1100000000, Expense: 750000000},
			{Month: "Apr", Revenue: 1050000000, Expense: 720000000},
			{Month: "May", Revenue: 1200000000, Expense: 800000000},
			{Month: "Jun", Revenue: 1350000000, Expense: 850000000},
		},
		WeeklyProduction: []ProductionPoint{
			{Week: "W1", Output: 2400},
			{Week: "W2", Output: 2800},
			{Week: "W3", Output: 3200},
			{Week: "W4", Output: 2900},
		},
		StatusDistribution: []StatusSlice{
			{Name: "Completed", Value: 45},
			{Name: "In Progress", Value: 30},
			{Name: "Planned", Value: 15},
			{Name: "Delayed", Value: 10},
		},
	}
}
