package report

// Report describes an available report template. Generation is not
// implemented yet; the catalog exists so clients can render the list.
type Report struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var Catalog = []Report{
	{
		Slug:        "production-summary",
		Name:        "Production Summary",
		Description: "Output volumes and completion rates per period",
		Category:    "production",
	},
	{
		Slug:        "financial-statement",
		Name:        "Financial Statement",
		Description: "Income, expenses and net balance per period",
		Category:    "finance",
	},
	{
		Slug:        "inventory-report",
		Name:        "Inventory Report",
		Description: "Stock levels, low stock items and valuations",
		Category:    "inventory",
	},
	{
		Slug:        "sales-performance",
		Name:        "Sales Performance",
		Description: "Order volumes and revenue by customer",
		Category:    "sales",
	},
	{
		Slug:        "tax-compliance",
		Name:        "Tax Compliance",
		Description: "Filing status and upcoming due dates per tax type",
		Category:    "tax",
	},
	{
		Slug:        "hr-analytics",
		Name:        "HR Analytics",
		Description: "Headcount and hiring trends by department",
		Category:    "employees",
	},
}

func BySlug(slug string) (Report, bool) {
	for _, r := range Catalog {
		if r.Slug == slug {
			return r, true
		}
	}
	return Report{}, false
}
