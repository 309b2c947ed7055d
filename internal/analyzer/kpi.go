package analyzer

import (
	"github.com/insightdelivered/financial-analytics/internal/models"
)

// CalculateKPIs computes the five aggregate indicators from a dataset and its
// detected column mapping. It is a total function: missing categories and
// unparseable cells contribute 0 to the sums, and every indicator has a
// fallback formula, so the report is always fully populated.
//
// Evaluation order is significant: the free cash flow fallback and the net
// margin read previously computed indicators, not raw column sums.
func CalculateKPIs(ds *models.Dataset, cols models.DetectedColumns) models.KPIReport {
	var report models.KPIReport

	report.RevenusTotaux = columnSum(ds, cols, "revenus")

	// EBITDA: operating result plus depreciation when the operating-result
	// column sums positive, otherwise revenue minus operating expenses.
	// The "ebitda" registry category is not consulted here: a column
	// literally labeled EBITDA feeds nothing and the fallback fires.
	resultatOp := columnSum(ds, cols, "resultat_operationnel")
	amortissements := columnSum(ds, cols, "amortissements")
	if resultatOp > 0 {
		report.EBITDA = resultatOp + amortissements
	} else {
		report.EBITDA = report.RevenusTotaux - columnSum(ds, cols, "charges")
	}

	// Net income: direct sum when positive, otherwise derived from revenue.
	// A net loss sums negative and takes the fallback path too.
	netIncome := columnSum(ds, cols, "resultat_net")
	if netIncome > 0 {
		report.ResultatNet = netIncome
	} else {
		report.ResultatNet = report.RevenusTotaux - columnSum(ds, cols, "charges") - columnSum(ds, cols, "impots")
	}

	cashFlow := columnSum(ds, cols, "cash_flow")
	if cashFlow > 0 {
		report.FreeCashFlow = cashFlow - columnSum(ds, cols, "investissements")
	} else {
		report.FreeCashFlow = report.ResultatNet - columnSum(ds, cols, "investissements")
	}

	if report.RevenusTotaux > 0 {
		report.MargeNette = report.ResultatNet / report.RevenusTotaux * 100
	}

	return report
}

// columnSum totals the normalized cell values of the column detected for
// category. It returns 0 when the category was not detected or its header is
// no longer present in the dataset.
func columnSum(ds *models.Dataset, cols models.DetectedColumns, category string) float64 {
	header, ok := cols[category]
	if !ok || !ds.HasHeader(header) {
		return 0
	}

	var total float64
	for _, row := range ds.Rows {
		total += Normalize(row[header])
	}
	return total
}
