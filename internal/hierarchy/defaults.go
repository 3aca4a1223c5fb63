package hierarchy

import "github.com/cleared-dev/ledgertree/internal/model"

// DefaultTaxonomy returns the seed chart-of-accounts taxonomy for a business type.
func DefaultTaxonomy(businessType string) []model.HierarchyRow {
	switch businessType {
	case "services":
		return withBusinessType("Services", servicesRows())
	default:
		return withBusinessType("Trading", tradingRows())
	}
}

func withBusinessType(businessType string, rows []model.HierarchyRow) []model.HierarchyRow {
	for i := range rows {
		rows[i].ID = int64(i + 1)
		rows[i].BusinessType = businessType
	}
	return rows
}

const (
	balanceSheet = "Balance Sheet"
	profitLoss   = "Profit & Loss"
)

func commonRows() []model.HierarchyRow {
	return []model.HierarchyRow{
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Current Assets", SubGroup1: "Cash-in-Hand", Ledger: "Cash", Code: model.MustCode("1010")},
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Current Assets", SubGroup1: "Bank Accounts", Ledger: "Current Account", Code: model.MustCode("1020")},
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Current Assets", SubGroup1: "Bank Accounts", Ledger: "Savings Account", Code: model.MustCode("1021")},
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Current Assets", SubGroup1: "Sundry Debtors", Ledger: "Trade Receivables", Code: model.MustCode("1030")},
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Fixed Assets", SubGroup1: "Tangible Assets", SubGroup2: "Office Equipment", Ledger: "Computers", Code: model.MustCode("1510")},
		{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Fixed Assets", SubGroup1: "Tangible Assets", SubGroup2: "Furniture & Fixtures", Ledger: "Furniture", Code: model.MustCode("1520")},
		{FinancialReporting: balanceSheet, MajorGroup: "Liabilities", Group: "Current Liabilities", SubGroup1: "Sundry Creditors", Ledger: "Trade Payables", Code: model.MustCode("2010")},
		{FinancialReporting: balanceSheet, MajorGroup: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes", SubGroup2: "GST", SubGroup3: "Output Tax", Ledger: "Output CGST", Code: model.MustCode("2110")},
		{FinancialReporting: balanceSheet, MajorGroup: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes", SubGroup2: "GST", SubGroup3: "Output Tax", Ledger: "Output SGST", Code: model.MustCode("2111")},
		{FinancialReporting: balanceSheet, MajorGroup: "Liabilities", Group: "Loans", SubGroup1: "Secured Loans", Ledger: "Bank Loan", Code: model.MustCode("2510")},
		{FinancialReporting: balanceSheet, MajorGroup: "Equity", Group: "Capital Account", Ledger: "Owner's Capital", Code: model.MustCode("3010")},
		{FinancialReporting: balanceSheet, MajorGroup: "Equity", Group: "Reserves & Surplus", Ledger: "Retained Earnings", Code: model.MustCode("3020")},
		{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Indirect Expenses", SubGroup1: "Administrative", Ledger: "Rent", Code: model.MustCode("5010")},
		{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Indirect Expenses", SubGroup1: "Administrative", Ledger: "Office Supplies", Code: model.MustCode("5020")},
		{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Indirect Expenses", SubGroup1: "Professional Fees", Ledger: "Audit Fees", Code: model.MustCode("5030")},
	}
}

func tradingRows() []model.HierarchyRow {
	return append(commonRows(),
		model.HierarchyRow{FinancialReporting: balanceSheet, MajorGroup: "Assets", Group: "Current Assets", SubGroup1: "Stock-in-Hand", Ledger: "Closing Stock", Code: model.MustCode("1040")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Income", Group: "Sales Accounts", Ledger: "Sales", Code: model.MustCode("4010")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Income", Group: "Indirect Income", Ledger: "Discount Received", Code: model.MustCode("4510")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Purchase Accounts", Ledger: "Purchases", Code: model.MustCode("5510")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Direct Expenses", Ledger: "Freight Inward", Code: model.MustCode("5520")},
	)
}

func servicesRows() []model.HierarchyRow {
	return append(commonRows(),
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Income", Group: "Service Revenue", Ledger: "Consulting Income", Code: model.MustCode("4010")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Income", Group: "Service Revenue", Ledger: "Retainer Income", Code: model.MustCode("4020")},
		model.HierarchyRow{FinancialReporting: profitLoss, MajorGroup: "Expenses", Group: "Direct Expenses", Ledger: "Subcontractor Costs", Code: model.MustCode("5520")},
	)
}
