package services

import (
	"testing"

	"api/github"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixTree() []github.TreeItem {
	return []github.TreeItem{
		blob("jsc/26-02-w1/boj-10.py"),
		blob("jsc/26-02-w1/boj-10-v2.py"),
		blob("jsc/26-02-w1/swea-20.py"),
		blob("bsw/26-02-w1/boj-10-v1.py"),
		blob("bsw/26-01-w5/boj-10.py"),
		blob("lhw/26-01-w5/swea-20.py"),
	}
}

func TestWeeklyMatrixHighestVersionWins(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	matrix := WeeklyMatrix(subs, testRoster(), "26-02-w1", "")

	assert.Equal(t, []string{"boj-10", "swea-20"}, matrix.Problems)

	memberIDs := make([]string, len(matrix.Members))
	for i, m := range matrix.Members {
		memberIDs[i] = m.ID
	}
	assert.Equal(t, []string{"bsw", "jsc"}, memberIDs)

	var jscCell *models.Submission
	for _, cell := range matrix.Cells {
		if cell.BaseName == "boj-10" && cell.Member == "jsc" {
			jscCell = cell.Submission
		}
	}
	require.NotNil(t, jscCell)
	assert.Equal(t, "boj-10-v2", jscCell.Name, "legacy boj-10 must lose to v2")
}

func TestWeeklyMatrixSourceFilter(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	matrix := WeeklyMatrix(subs, testRoster(), "26-02-w1", "boj")

	// Rows narrowed to boj; columns still everyone active that week
	assert.Equal(t, []string{"boj-10"}, matrix.Problems)
	assert.Len(t, matrix.Members, 2)
}

func TestWeeklyMatrixEmptyWeek(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	matrix := WeeklyMatrix(subs, testRoster(), "25-12-w1", "")
	assert.Empty(t, matrix.Problems)
	assert.Empty(t, matrix.Members)
	assert.Empty(t, matrix.Cells)
}

func TestRankTotals(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	entries := RankTotals(subs, testRoster())

	require.Len(t, entries, 3)
	assert.Equal(t, "jsc", entries[0].Member.ID)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, "bsw", entries[1].Member.ID)
	assert.Equal(t, 2, entries[1].Count)
	assert.Equal(t, "lhw", entries[2].Member.ID)
	assert.Equal(t, 1, entries[2].Count)
}

func TestRankWeeklyUsesLatestWeek(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	entries := RankWeekly(subs, testRoster())

	require.Len(t, entries, 3)
	// Latest week is 26-02-w1: jsc has 3 there, bsw 1, lhw 0
	assert.Equal(t, "jsc", entries[0].Member.ID)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, 0, entries[2].Count)
}

func TestRankStreaks(t *testing.T) {
	activities := models.Activities{
		"jsc": {Streak: 1},
		"bsw": {Streak: 5},
		"lhw": {Streak: 0},
	}
	entries := RankStreaks(activities, testRoster())
	require.Len(t, entries, 3)
	assert.Equal(t, "bsw", entries[0].Member.ID)
	assert.Equal(t, 5, entries[0].Count)
}

func TestGroupByWeek(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())
	mine := FilterSubmissions(subs, "bsw", "", "")
	groups := GroupByWeek(mine)

	require.Len(t, groups, 2)
	assert.Equal(t, "26-02-w1", groups[0].Week)
	require.Len(t, groups[0].Submissions, 1)
	assert.Equal(t, "26-01-w5", groups[1].Week)
}

func TestOtherSolutions(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())

	var target models.Submission
	for _, sub := range subs {
		if sub.ID == "jsc/26-02-w1/boj-10-v2" {
			target = sub
		}
	}
	require.NotEmpty(t, target.ID)

	others := OtherSolutions(subs, target)
	require.Len(t, others, 3)
	for _, other := range others {
		assert.Equal(t, "boj-10", other.BaseName)
		assert.NotEqual(t, target.ID, other.ID)
	}
}

func TestFilterSubmissions(t *testing.T) {
	subs := ParseTree(matrixTree(), testRoster())

	assert.Len(t, FilterSubmissions(subs, "", "", ""), 6)
	assert.Len(t, FilterSubmissions(subs, "jsc", "", ""), 3)
	assert.Len(t, FilterSubmissions(subs, "", "26-01-w5", ""), 2)
	assert.Len(t, FilterSubmissions(subs, "", "", "swea"), 2)
	assert.Len(t, FilterSubmissions(subs, "jsc", "26-02-w1", "boj"), 2)
}
