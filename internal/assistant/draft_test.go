package assistant

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "sitedesk/internal/errors"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("fills_missing_fields", func(t *testing.T) {
		draft := ReportDraft{Amount: -500, Date: "next tuesday"}
		draft.applyDefaults()

		if draft.Amount != 0 {
			t.Errorf("expected negative amount reset to 0, got %d", draft.Amount)
		}
		today := time.Now().Format("2006/01/02")
		if draft.Date != today {
			t.Errorf("expected date defaulted to %s, got %s", today, draft.Date)
		}
		if draft.Items == nil {
			t.Error("expected items defaulted to empty slice")
		}
	})

	t.Run("keeps_valid_fields", func(t *testing.T) {
		draft := ReportDraft{
			Amount: 1_000,
			Date:   "2025/02/18",
			Items:  []DraftItem{{Description: "cement"}},
		}
		draft.applyDefaults()

		if draft.Amount != 1_000 || draft.Date != "2025/02/18" || len(draft.Items) != 1 {
			t.Errorf("expected valid fields untouched, got %+v", draft)
		}
	})
}

func TestDraftValidate(t *testing.T) {
	t.Run("complete_draft_passes", func(t *testing.T) {
		draft := ReportDraft{
			Title:  "cement purchase",
			Amount: 130_000_000,
			Date:   "2025/02/18",
			Items:  []DraftItem{{Description: "Type 2 cement", Quantity: 500, UnitPrice: 260_000}},
		}

		if err := draft.Validate(); err != nil {
			t.Errorf("expected valid draft, got %v", err)
		}
	})

	t.Run("reports_all_problems_at_once", func(t *testing.T) {
		draft := ReportDraft{
			Title:  "  ",
			Amount: -1,
			Date:   "soon",
			Items:  []DraftItem{{Description: "", Quantity: -2}},
		}

		err := draft.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("expected *AppError, got %T", err)
		}
		if appErr.Code != "INVALID_DRAFT" {
			t.Errorf("expected INVALID_DRAFT, got %s", appErr.Code)
		}
		for _, want := range []string{"title", "amount", "date", "item 1"} {
			if !strings.Contains(appErr.Message, want) {
				t.Errorf("expected message to mention %q, got %q", want, appErr.Message)
			}
		}
	})

	t.Run("itemless_draft_is_allowed", func(t *testing.T) {
		draft := ReportDraft{Title: "worker wages", Amount: 50_000_000, Date: "2025/02/18"}

		if err := draft.Validate(); err != nil {
			t.Errorf("expected valid draft without items, got %v", err)
		}
	})
}
