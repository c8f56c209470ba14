package insights

import "sitedesk/internal/models"

// FinancialSummary is the rollup of the transaction ledger.
// OutstandingDebt counts debt transactions that have not been settled.
type FinancialSummary struct {
	Deposits        int64 `json:"deposits"`
	Expenses        int64 `json:"expenses"`
	OutstandingDebt int64 `json:"outstanding_debt"`
}

// Summarize folds the full transaction list into a financial summary.
func Summarize(transactions []models.Transaction) FinancialSummary {
	var s FinancialSummary
	for i := range transactions {
		t := &transactions[i]
		switch t.Type {
		case models.TransactionTypeDeposit:
			s.Deposits += t.Amount
		case models.TransactionTypeExpense:
			s.Expenses += t.Amount
		case models.TransactionTypeDebt:
			if t.Status != models.TransactionStatusPaid {
				s.OutstandingDebt += t.Amount
			}
		}
	}
	return s
}

// SummarizeForPartner restricts the rollup to transactions linked to the
// given partner.
func SummarizeForPartner(transactions []models.Transaction, partnerID string) FinancialSummary {
	var linked []models.Transaction
	for _, t := range transactions {
		if t.PartnerID != nil && *t.PartnerID == partnerID {
			linked = append(linked, t)
		}
	}
	return Summarize(linked)
}

// BudgetAllocation splits the total budget into spent and remaining
// slices. Remaining never goes negative; overspend is surfaced through
// the OverBudget flag instead.
type BudgetAllocation struct {
	TotalBudget int64 `json:"total_budget"`
	TotalSpent  int64 `json:"total_spent"`
	Remaining   int64 `json:"remaining"`
	OverBudget  bool  `json:"over_budget"`
}

// Allocate computes the budget allocation view for a project.
func Allocate(project *models.Project) BudgetAllocation {
	a := BudgetAllocation{
		TotalBudget: project.TotalBudget,
		TotalSpent:  project.TotalSpent,
		Remaining:   project.TotalBudget - project.TotalSpent,
	}
	if a.Remaining < 0 {
		a.Remaining = 0
		a.OverBudget = true
	}
	return a
}

// TransactionFilter holds optional filter parameters for the ledger view.
// Date bounds are inclusive and compared lexically, which is valid only
// because dates use the zero-padded YYYY/MM/DD format.
type TransactionFilter struct {
	Type     *models.TransactionType
	FromDate string
	ToDate   string
}

// FilterTransactions returns the transactions matching the filter,
// preserving input order.
func FilterTransactions(transactions []models.Transaction, filter TransactionFilter) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.FromDate != "" && t.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && t.Date > filter.ToDate {
			continue
		}
		result = append(result, t)
	}
	return result
}
