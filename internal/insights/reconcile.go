package insights

import (
	"fmt"

	"sitedesk/internal/models"
)

// DiscrepancyKind classifies a reconciliation finding.
type DiscrepancyKind string

const (
	DiscrepancyOverBudget     DiscrepancyKind = "over_budget"
	DiscrepancySpentMismatch  DiscrepancyKind = "spent_mismatch"
	DiscrepancyShareSum       DiscrepancyKind = "share_sum"
	DiscrepancyStageStatus    DiscrepancyKind = "stage_status"
	DiscrepancyReportSubtotal DiscrepancyKind = "report_subtotal"
)

// Discrepancy is one advisory reconciliation finding. Findings are never
// auto-corrected: report amounts and aggregate totals allow deliberate
// manual overrides, so the caller surfaces these as banners only.
type Discrepancy struct {
	Kind    DiscrepancyKind `json:"kind"`
	Ref     string          `json:"ref,omitempty"`
	Message string          `json:"message"`
}

// Reconcile cross-checks the project aggregate against its children and
// returns every discrepancy found.
func Reconcile(project *models.Project) []Discrepancy {
	var findings []Discrepancy

	if project.TotalSpent > project.TotalBudget {
		findings = append(findings, Discrepancy{
			Kind:    DiscrepancyOverBudget,
			Ref:     project.ID,
			Message: fmt.Sprintf("total spent %d exceeds total budget %d", project.TotalSpent, project.TotalBudget),
		})
	}

	summary := Summarize(project.Transactions)
	if summary.Expenses != project.TotalSpent {
		findings = append(findings, Discrepancy{
			Kind:    DiscrepancySpentMismatch,
			Ref:     project.ID,
			Message: fmt.Sprintf("total spent %d does not match expense transaction sum %d", project.TotalSpent, summary.Expenses),
		})
	}

	var shareSum float64
	for i := range project.Partners {
		shareSum += project.Partners[i].Share
	}
	if len(project.Partners) > 0 && shareSum != 100 {
		findings = append(findings, Discrepancy{
			Kind:    DiscrepancyShareSum,
			Ref:     project.ID,
			Message: fmt.Sprintf("partner shares sum to %.1f, not 100", shareSum),
		})
	}

	for i := range project.Stages {
		stage := &project.Stages[i]
		if derived := models.DeriveStageStatus(stage.Percentage); stage.Status != derived {
			findings = append(findings, Discrepancy{
				Kind:    DiscrepancyStageStatus,
				Ref:     stage.ID,
				Message: fmt.Sprintf("stage %q has status %s but percentage %d implies %s", stage.Name, stage.Status, stage.Percentage, derived),
			})
		}
	}

	for i := range project.Reports {
		report := &project.Reports[i]
		if len(report.Items) == 0 {
			continue
		}
		if subtotal := report.ItemsSubtotal(); subtotal != report.Amount {
			findings = append(findings, Discrepancy{
				Kind:    DiscrepancyReportSubtotal,
				Ref:     report.ID,
				Message: fmt.Sprintf("report %q amount %d differs from item subtotal %d", report.Title, report.Amount, subtotal),
			})
		}
	}

	return findings
}
