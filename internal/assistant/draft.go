package assistant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "sitedesk/internal/errors"
)

// dateShape matches the zero-padded YYYY/MM/DD format used everywhere in
// the project data.
var dateShape = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// DraftItem is one extracted line item of a report draft.
type DraftItem struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
}

// ReportDraft is an unconfirmed site report produced by voice extraction.
// A draft must be confirmed by a human and pass Validate before it is
// committed through the normal report operation.
type ReportDraft struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Amount      int64       `json:"amount"`
	Date        string      `json:"date"`
	Items       []DraftItem `json:"items"`
}

// applyDefaults fills missing or malformed fields with safe defaults:
// empty title stays empty, negative amounts become 0, a missing or
// malformed date becomes today, and items default to an empty list.
func (d *ReportDraft) applyDefaults() {
	if d.Amount < 0 {
		d.Amount = 0
	}
	if !dateShape.MatchString(d.Date) {
		d.Date = time.Now().Format("2006/01/02")
	}
	if d.Items == nil {
		d.Items = []DraftItem{}
	}
}

// Validate is the single draft-to-report conversion gate. It returns an
// error naming every missing or invalid field at once, so the user can
// fix the whole draft in one pass.
func (d *ReportDraft) Validate() error {
	var problems []string

	if strings.TrimSpace(d.Title) == "" {
		problems = append(problems, "title is required")
	}
	if d.Amount < 0 {
		problems = append(problems, "amount must not be negative")
	}
	if !dateShape.MatchString(d.Date) {
		problems = append(problems, "date must be formatted YYYY/MM/DD")
	}
	for i, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" {
			problems = append(problems, fmt.Sprintf("item %d needs a description", i+1))
		}
		if item.Quantity < 0 || item.UnitPrice < 0 {
			problems = append(problems, fmt.Sprintf("item %d quantity and unit price must not be negative", i+1))
		}
	}

	if len(problems) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidDraft, strings.Join(problems, "; "))
	}
	return nil
}
