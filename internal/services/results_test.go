package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-screener/internal/models"
)

func result(id string, score float64, status models.ScreeningStatus) models.ScreeningResult {
	return models.ScreeningResult{CVID: id, CVName: id + ".pdf", Score: score, Status: status}
}

func TestGroupResults(t *testing.T) {
	input := []models.ScreeningResult{
		result("a", 45, models.StatusRejected),
		result("b", 91, models.StatusSelected),
		result("c", 60, models.StatusSelected),
		result("d", 12, models.StatusRejected),
	}

	grouped := GroupResults(input)

	ids := func(rs []models.ScreeningResult) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.CVID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(grouped.All))
	assert.Equal(t, []string{"b", "c"}, ids(grouped.Selected))
	assert.Equal(t, []string{"a", "d"}, ids(grouped.Rejected))

	// input order untouched
	assert.Equal(t, "a", input[0].CVID)
}

func TestGroupResults_Empty(t *testing.T) {
	grouped := GroupResults(nil)
	assert.Empty(t, grouped.All)
	assert.Empty(t, grouped.Selected)
	assert.Empty(t, grouped.Rejected)
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]models.ScreeningResult{
		result("a", 85, models.StatusSelected),
		result("b", 40, models.StatusRejected),
		result("c", 62, models.StatusSelected),
	})

	assert.Equal(t, models.ScreeningSummary{Total: 3, Selected: 2, Rejected: 1, AverageScore: 62}, summary)
	assert.Equal(t, models.ScreeningSummary{}, Summarize(nil))
}

func TestSummarize_RoundsAverage(t *testing.T) {
	summary := Summarize([]models.ScreeningResult{
		result("a", 70, models.StatusSelected),
		result("b", 71, models.StatusSelected),
	})
	assert.Equal(t, 71, summary.AverageScore)
}

func TestScoreBand(t *testing.T) {
	testCases := []struct {
		score float64
		want  ScoreBandName
	}{
		{100, BandStrong},
		{80, BandStrong},
		{79.9, BandGood},
		{60, BandGood},
		{59, BandFair},
		{40, BandFair},
		{39, BandWeak},
		{0, BandWeak},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ScoreBand(tc.score), "score %v", tc.score)
	}
}

func TestCheckContract(t *testing.T) {
	consistent := []models.ScreeningResult{
		result("a", 60, models.StatusSelected),
		result("b", 59.5, models.StatusRejected),
		result("c", 0, models.StatusRejected),
		result("d", 100, models.StatusSelected),
	}
	assert.Empty(t, CheckContract(consistent))

	violations := CheckContract([]models.ScreeningResult{
		result("low-but-selected", 30, models.StatusSelected),
		result("high-but-rejected", 75, models.StatusRejected),
		result("out-of-range", 140, models.StatusSelected),
	})
	require.Len(t, violations, 3)
	assert.Equal(t, "low-but-selected", violations[0].CVID)
	assert.Equal(t, "high-but-rejected", violations[1].CVID)
	assert.Equal(t, "out-of-range", violations[2].CVID)
	assert.Contains(t, violations[2].Reason, "outside 0-100")
}
