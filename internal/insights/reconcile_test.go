package insights

import (
	"testing"

	"sitedesk/internal/models"
)

func findKind(findings []Discrepancy, kind DiscrepancyKind) *Discrepancy {
	for i := range findings {
		if findings[i].Kind == kind {
			return &findings[i]
		}
	}
	return nil
}

func TestReconcile(t *testing.T) {
	t.Run("consistent_project_has_no_findings", func(t *testing.T) {
		project := &models.Project{
			TotalBudget: 10_000,
			TotalSpent:  4_000,
			Transactions: []models.Transaction{
				tx(models.TransactionTypeExpense, 4_000, models.TransactionStatusPaid),
			},
			Partners: []models.Partner{
				{Name: "A", Share: 60},
				{Name: "B", Share: 40},
			},
			Stages: []models.ProgressStage{
				{Name: "Site excavation", Percentage: 100, Status: models.StageStatusCompleted},
			},
			Reports: []models.SiteReport{
				{
					Title:  "Pour",
					Amount: 1_000,
					Items:  []models.ReportItem{{Description: "cement", Quantity: 10, UnitPrice: 100}},
				},
			},
		}

		findings := Reconcile(project)

		if len(findings) != 0 {
			t.Fatalf("expected no findings, got %+v", findings)
		}
	})

	t.Run("flags_over_budget", func(t *testing.T) {
		project := &models.Project{
			TotalBudget: 1_000,
			TotalSpent:  1_500,
			Transactions: []models.Transaction{
				tx(models.TransactionTypeExpense, 1_500, models.TransactionStatusPaid),
			},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancyOverBudget) == nil {
			t.Errorf("expected over_budget finding, got %+v", findings)
		}
	})

	t.Run("flags_spent_mismatch", func(t *testing.T) {
		project := &models.Project{
			TotalBudget: 10_000,
			TotalSpent:  5_000,
			Transactions: []models.Transaction{
				tx(models.TransactionTypeExpense, 4_000, models.TransactionStatusPaid),
			},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancySpentMismatch) == nil {
			t.Errorf("expected spent_mismatch finding, got %+v", findings)
		}
	})

	t.Run("flags_partner_share_sum", func(t *testing.T) {
		project := &models.Project{
			Partners: []models.Partner{
				{Name: "A", Share: 60},
				{Name: "B", Share: 30},
			},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancyShareSum) == nil {
			t.Errorf("expected share_sum finding, got %+v", findings)
		}
	})

	t.Run("no_share_finding_without_partners", func(t *testing.T) {
		findings := Reconcile(&models.Project{})

		if findKind(findings, DiscrepancyShareSum) != nil {
			t.Errorf("expected no share_sum finding for empty partner list, got %+v", findings)
		}
	})

	t.Run("flags_stage_status_drift", func(t *testing.T) {
		project := &models.Project{
			Stages: []models.ProgressStage{
				{Name: "Site excavation", Percentage: 100, Status: models.StageStatusInProgress},
			},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancyStageStatus) == nil {
			t.Errorf("expected stage_status finding, got %+v", findings)
		}
	})

	t.Run("flags_report_subtotal_divergence", func(t *testing.T) {
		project := &models.Project{
			Reports: []models.SiteReport{
				{
					Title:  "Pour",
					Amount: 999,
					Items:  []models.ReportItem{{Description: "cement", Quantity: 10, UnitPrice: 100}},
				},
			},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancyReportSubtotal) == nil {
			t.Errorf("expected report_subtotal finding, got %+v", findings)
		}
	})

	t.Run("itemless_report_is_not_checked", func(t *testing.T) {
		project := &models.Project{
			Reports: []models.SiteReport{{Title: "Manual entry", Amount: 999}},
		}

		findings := Reconcile(project)

		if findKind(findings, DiscrepancyReportSubtotal) != nil {
			t.Errorf("expected no subtotal finding for itemless report, got %+v", findings)
		}
	})
}
