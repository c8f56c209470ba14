package insights

import (
	"testing"

	"sitedesk/internal/models"
)

func stage(name string, percentage int) models.ProgressStage {
	return models.ProgressStage{
		Name:       name,
		Percentage: percentage,
		Status:     models.DeriveStageStatus(percentage),
	}
}

func TestGroupStages(t *testing.T) {
	t.Run("partial_bucket_rounds_mean", func(t *testing.T) {
		stages := []models.ProgressStage{
			stage("Site excavation", 100),
			stage("Foundation pour", 100),
			stage("Elevator pit digging", 50),
		}

		buckets := GroupStages(stages, DefaultStageBuckets)

		first := buckets[0]
		if first.Name != "Permits & Foundation" {
			t.Fatalf("expected first bucket Permits & Foundation, got %s", first.Name)
		}
		if first.StageCount != 3 {
			t.Fatalf("expected 3 stages in first bucket, got %d", first.StageCount)
		}
		// mean of 100, 100, 50 is 83.33, rounded to 83
		if first.Progress != 83 {
			t.Errorf("expected progress 83, got %d", first.Progress)
		}
		if first.Status != models.StageStatusInProgress {
			t.Errorf("expected status in_progress, got %s", first.Status)
		}
	})

	t.Run("first_matching_bucket_wins", func(t *testing.T) {
		// "wall post" belongs to Structure & Walls even though
		// "installation" also appears in the Fixtures keyword list.
		stages := []models.ProgressStage{stage("Wall post installation", 40)}

		buckets := GroupStages(stages, DefaultStageBuckets)

		if buckets[1].StageCount != 1 {
			t.Errorf("expected stage in Structure & Walls, got count %d", buckets[1].StageCount)
		}
		if buckets[5].StageCount != 0 {
			t.Errorf("expected Fixtures & Completion empty, got count %d", buckets[5].StageCount)
		}
	})

	t.Run("matching_is_case_insensitive", func(t *testing.T) {
		stages := []models.ProgressStage{stage("CERAMIC Floor Tiling", 10)}

		buckets := GroupStages(stages, DefaultStageBuckets)

		if buckets[4].StageCount != 1 {
			t.Errorf("expected stage in Finishing & Tiling, got count %d", buckets[4].StageCount)
		}
	})

	t.Run("empty_bucket_is_pending_at_zero", func(t *testing.T) {
		buckets := GroupStages(nil, DefaultStageBuckets)

		if len(buckets) != len(DefaultStageBuckets) {
			t.Fatalf("expected %d buckets, got %d", len(DefaultStageBuckets), len(buckets))
		}
		for _, b := range buckets {
			if b.Progress != 0 {
				t.Errorf("bucket %s: expected progress 0, got %d", b.Name, b.Progress)
			}
			if b.Status != models.StageStatusPending {
				t.Errorf("bucket %s: expected status pending, got %s", b.Name, b.Status)
			}
		}
	})

	t.Run("unmatched_stage_is_dropped", func(t *testing.T) {
		stages := []models.ProgressStage{stage("Miscellaneous paperwork", 50)}

		buckets := GroupStages(stages, DefaultStageBuckets)

		for _, b := range buckets {
			if b.StageCount != 0 {
				t.Errorf("bucket %s: expected no stages, got %d", b.Name, b.StageCount)
			}
		}
	})

	t.Run("complete_bucket_is_completed", func(t *testing.T) {
		stages := []models.ProgressStage{
			stage("Building permit application", 100),
			stage("Site excavation", 100),
		}

		buckets := GroupStages(stages, DefaultStageBuckets)

		if buckets[0].Progress != 100 {
			t.Errorf("expected progress 100, got %d", buckets[0].Progress)
		}
		if buckets[0].Status != models.StageStatusCompleted {
			t.Errorf("expected status completed, got %s", buckets[0].Status)
		}
	})

	t.Run("pure_over_repeated_calls", func(t *testing.T) {
		stages := []models.ProgressStage{
			stage("Site excavation", 100),
			stage("Structural frame erection", 65),
		}

		first := GroupStages(stages, DefaultStageBuckets)
		second := GroupStages(stages, DefaultStageBuckets)

		for i := range first {
			if first[i].Progress != second[i].Progress || first[i].StageCount != second[i].StageCount {
				t.Errorf("bucket %s: repeated grouping diverged", first[i].Name)
			}
		}
	})
}

func TestCurrentBucket(t *testing.T) {
	t.Run("first_incomplete_bucket", func(t *testing.T) {
		stages := []models.ProgressStage{
			stage("Site excavation", 100),
			stage("Structural frame erection", 65),
			stage("Utilities rough-in", 0),
		}

		buckets := GroupStages(stages, DefaultStageBuckets)
		current := CurrentBucket(buckets)

		if current == nil {
			t.Fatal("expected a current bucket")
		}
		if current.Name != "Structure & Walls" {
			t.Errorf("expected Structure & Walls, got %s", current.Name)
		}
	})

	t.Run("nil_when_no_buckets", func(t *testing.T) {
		if current := CurrentBucket(nil); current != nil {
			t.Errorf("expected nil, got %v", current)
		}
	})

	t.Run("empty_buckets_count_as_incomplete", func(t *testing.T) {
		buckets := GroupStages(nil, DefaultStageBuckets)
		current := CurrentBucket(buckets)

		if current == nil {
			t.Fatal("expected a current bucket")
		}
		if current.Name != DefaultStageBuckets[0].Name {
			t.Errorf("expected %s, got %s", DefaultStageBuckets[0].Name, current.Name)
		}
	})
}
