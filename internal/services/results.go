package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/ecodeclub/ekit/slice"

	"alfredoptarigan/cv-screener/internal/models"
)

type ScoreBandName string

const (
	BandStrong ScoreBandName = "strong"
	BandGood   ScoreBandName = "good"
	BandFair   ScoreBandName = "fair"
	BandWeak   ScoreBandName = "weak"
)

func ScoreBand(score float64) ScoreBandName {
	switch {
	case score >= 80:
		return BandStrong
	case score >= models.SelectionThreshold:
		return BandGood
	case score >= 40:
		return BandFair
	}
	return BandWeak
}

// GroupResults splits results by status. Every list is ordered by score,
// highest first. The input is not modified.
func GroupResults(results []models.ScreeningResult) models.GroupedResults {
	all := make([]models.ScreeningResult, len(results))
	copy(all, results)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	return models.GroupedResults{
		All:      all,
		Selected: filterByStatus(all, models.StatusSelected),
		Rejected: filterByStatus(all, models.StatusRejected),
	}
}

func filterByStatus(results []models.ScreeningResult, status models.ScreeningStatus) []models.ScreeningResult {
	return slice.FilterMap(results, func(_ int, src models.ScreeningResult) (models.ScreeningResult, bool) {
		return src, src.Status == status
	})
}

func Summarize(results []models.ScreeningResult) models.ScreeningSummary {
	summary := models.ScreeningSummary{Total: len(results)}
	if len(results) == 0 {
		return summary
	}

	var total float64
	for _, r := range results {
		total += r.Score
		switch r.Status {
		case models.StatusSelected:
			summary.Selected++
		case models.StatusRejected:
			summary.Rejected++
		}
	}
	summary.AverageScore = int(math.Round(total / float64(len(results))))
	return summary
}

// CheckContract lists results that break the scoring contract: a score
// outside [0, 100], or a status that disagrees with the selection threshold.
// Results are reported, never corrected.
func CheckContract(results []models.ScreeningResult) []models.ContractViolation {
	var violations []models.ContractViolation
	for _, r := range results {
		if r.Score < 0 || r.Score > 100 {
			violations = append(violations, models.ContractViolation{
				CVID:   r.CVID,
				Reason: fmt.Sprintf("score %.2f is outside 0-100", r.Score),
			})
		}

		expected := models.StatusRejected
		if r.Score >= models.SelectionThreshold {
			expected = models.StatusSelected
		}
		if r.Status != expected {
			violations = append(violations, models.ContractViolation{
				CVID:   r.CVID,
				Reason: fmt.Sprintf("status %q does not match score %.2f (threshold %d)", r.Status, r.Score, models.SelectionThreshold),
			})
		}
	}
	return violations
}
