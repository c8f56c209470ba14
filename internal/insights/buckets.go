// Package insights contains the derived-view computations for a project
// snapshot: stage bucket aggregation, financial rollups, low-stock
// detection, and reconciliation checks. All functions are pure; they are
// cheap enough to re-run on every read.
package insights

import (
	"math"
	"strings"

	"sitedesk/internal/models"
)

// StageBucket defines one named aggregation of stages. A stage belongs to
// the first bucket (in table order) whose keyword list matches its name.
// The bucket order is fixed and significant: it defines display order and
// current-phase inference.
type StageBucket struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// DefaultStageBuckets is the canonical grouping table for the standard
// residential build sequence.
var DefaultStageBuckets = []StageBucket{
	{Name: "Permits & Foundation", Keywords: []string{"permit", "licensing", "engineering", "excavation", "piling", "elevator pit", "foundation"}},
	{Name: "Structure & Walls", Keywords: []string{"structural frame", "wall post", "masonry", "rail chassis"}},
	{Name: "Mechanical & Electrical", Keywords: []string{"utilities", "duct", "core drilling"}},
	{Name: "Substrate & Insulation", Keywords: []string{"plaster", "facade", "cement", "screed", "waterproofing", "bitumen"}},
	{Name: "Finishing & Tiling", Keywords: []string{"ceramic", "whitewash", "tiling", "suspended ceiling", "stonework"}},
	{Name: "Fixtures & Completion", Keywords: []string{"installation", "lobby", "lighting", "window"}},
}

// BucketSummary is the aggregated view of one stage bucket.
type BucketSummary struct {
	Name       string                 `json:"name"`
	Progress   int                    `json:"progress"`
	Status     models.StageStatus     `json:"status"`
	StageCount int                    `json:"stage_count"`
	Stages     []models.ProgressStage `json:"stages"`
}

// matches reports whether the stage name contains any of the bucket
// keywords, case-insensitively.
func (b StageBucket) matches(stageName string) bool {
	name := strings.ToLower(stageName)
	for _, kw := range b.Keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// GroupStages partitions the flat ordered stage list into the given
// buckets. For each bucket, progress is the rounded mean of member stage
// percentages; an empty bucket has progress 0 and status pending.
func GroupStages(stages []models.ProgressStage, buckets []StageBucket) []BucketSummary {
	summaries := make([]BucketSummary, len(buckets))
	for i, b := range buckets {
		summaries[i] = BucketSummary{Name: b.Name, Status: models.StageStatusPending}
	}

	for _, stage := range stages {
		for i, b := range buckets {
			if b.matches(stage.Name) {
				summaries[i].Stages = append(summaries[i].Stages, stage)
				break
			}
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.StageCount = len(s.Stages)
		if s.StageCount == 0 {
			continue
		}
		total := 0
		for _, stage := range s.Stages {
			total += stage.Percentage
		}
		s.Progress = int(math.Round(float64(total) / float64(s.StageCount)))
		switch {
		case s.Progress >= 100:
			s.Status = models.StageStatusCompleted
		case s.Progress > 0:
			s.Status = models.StageStatusInProgress
		}
	}

	return summaries
}

// CurrentBucket returns the first bucket in order that is not completed,
// which defines the project's current phase. Returns nil when every bucket
// is completed or the list is empty.
func CurrentBucket(summaries []BucketSummary) *BucketSummary {
	for i := range summaries {
		if summaries[i].Status != models.StageStatusCompleted {
			return &summaries[i]
		}
	}
	return nil
}
