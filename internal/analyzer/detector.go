// Package analyzer classifies dataset columns into canonical financial
// categories and computes aggregate indicators from them. Everything in this
// package is pure and total: no I/O, no shared state, and no failure paths.
package analyzer

import (
	"strings"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

// categoryPatterns associates one canonical financial category with the
// header keywords that identify it. French and English variants are listed
// because uploads come from both locales.
type categoryPatterns struct {
	Category string
	Patterns []string
}

// columnRegistry drives column detection. Order matters twice over:
// categories are resolved top to bottom, and within a category the first
// matching header wins, so reordering entries changes tie-breaks.
var columnRegistry = []categoryPatterns{
	{"revenus", []string{"revenus", "revenue", "sales", "ventes", "chiffre_affaires", "ca", "turnover", "income"}},
	{"charges", []string{"charges", "expenses", "costs", "depenses", "charges_operationnelles", "operating_expenses"}},
	{"ebitda", []string{"ebitda", "earnings_before_interest_taxes_depreciation_amortization"}},
	{"resultat_operationnel", []string{"resultat_operationnel", "operating_income", "operating_result", "ebit"}},
	{"amortissements", []string{"amortissements", "depreciation", "amortization", "depreciation_amortization"}},
	{"resultat_net", []string{"resultat_net", "net_income", "net_profit", "benefice_net", "profit"}},
	{"impots", []string{"impots", "taxes", "tax", "impot_societes"}},
	{"cash_flow", []string{"cash_flow", "cashflow", "flux_tresorerie"}},
	{"investissements", []string{"investissements", "investments", "capex", "capital_expenditure"}},
	{"date", []string{"date", "periode", "month", "mois", "year", "annee", "trimestre", "quarter"}},
}

// DetectColumns maps dataset headers to canonical financial categories.
// Matching is a symmetric substring test against normalized headers, so an
// abbreviated header like "CA" matches the full "chiffre_affaires" pattern
// and vice versa. A header may satisfy more than one category; categories
// with no matching header are omitted from the result.
func DetectColumns(headers []string) models.DetectedColumns {
	detected := make(models.DetectedColumns)

	normalized := make([]string, len(headers))
	for i, h := range headers {
		n := strings.ToLower(h)
		n = strings.ReplaceAll(n, " ", "_")
		n = strings.ReplaceAll(n, "-", "_")
		normalized[i] = n
	}

	for _, cp := range columnRegistry {
		for i, col := range normalized {
			if matchesAny(col, cp.Patterns) {
				detected[cp.Category] = headers[i]
				break
			}
		}
	}

	return detected
}

func matchesAny(col string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(col, p) || strings.Contains(p, col) {
			return true
		}
	}
	return false
}
