package services

import (
	"testing"
	"time"

	"api/github"
	"api/models"
	"api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-02-02 is a Monday
func kstDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, utils.KST)
}

func TestCalculateStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CalculateStreak(nil, kstDay(2026, 2, 2)))
}

func TestCalculateStreakWeekendGap(t *testing.T) {
	// Friday entry followed by Monday entry: the weekend is skipped, not a gap
	dates := []string{"2026-01-30", "2026-02-02"}
	assert.Equal(t, 2, CalculateStreak(dates, kstDay(2026, 2, 2)))
}

func TestCalculateStreakGraceDay(t *testing.T) {
	// Nothing today (Tuesday) but yesterday present: counted from yesterday
	dates := []string{"2026-01-30", "2026-02-02"}
	assert.Equal(t, 2, CalculateStreak(dates, kstDay(2026, 2, 3)))

	// Nothing today and nothing on the previous weekday: broken
	assert.Equal(t, 0, CalculateStreak([]string{"2026-01-29"}, kstDay(2026, 2, 3)))
}

func TestCalculateStreakWeekendToday(t *testing.T) {
	// On Saturday/Sunday the check starts from Friday
	dates := []string{"2026-02-05", "2026-02-06"} // Thu, Fri
	assert.Equal(t, 2, CalculateStreak(dates, kstDay(2026, 2, 7))) // Saturday
	assert.Equal(t, 2, CalculateStreak(dates, kstDay(2026, 2, 8))) // Sunday
}

func TestCalculateStreakConsecutiveRun(t *testing.T) {
	dates := []string{
		"2026-01-28", // Wed
		"2026-01-29", // Thu
		"2026-01-30", // Fri
		"2026-02-02", // Mon
		"2026-02-03", // Tue
	}
	assert.Equal(t, 5, CalculateStreak(dates, kstDay(2026, 2, 3)))

	// A missing weekday inside the run cuts it
	gapped := []string{"2026-01-29", "2026-02-02", "2026-02-03"}
	assert.Equal(t, 2, CalculateStreak(gapped, kstDay(2026, 2, 3)))
}

func commitBy(login, date string) github.Commit {
	var c github.Commit
	c.Commit.Author.Date = date
	c.Author = &struct {
		Login string `json:"login"`
	}{Login: login}
	return c
}

func TestAggregateActivity(t *testing.T) {
	roster := models.Roster{
		"jsc": {Name: "장수철", Github: "Apple7575"},
		"bsw": {Name: "백승우", Github: "bsw1206"},
	}

	commits := []github.Commit{
		// Handle matching is case-insensitive
		commitBy("apple7575", "2026-02-02T01:00:00Z"),
		// Same KST day as the commit above (10:00 and 12:00 KST)
		commitBy("Apple7575", "2026-02-02T03:00:00Z"),
		// 23:00 UTC Feb 2 is 08:00 KST Feb 3
		commitBy("apple7575", "2026-02-02T23:00:00Z"),
		// Unknown author is ignored
		commitBy("stranger", "2026-02-02T01:00:00Z"),
	}

	activities := AggregateActivity(commits, roster, kstDay(2026, 2, 3))

	jsc := activities["jsc"]
	require.Equal(t, []string{"2026-02-02", "2026-02-03"}, jsc.Dates)
	assert.Equal(t, 2, jsc.Streak)

	// Every roster member gets an entry, active or not
	bsw := activities["bsw"]
	assert.Empty(t, bsw.Dates)
	assert.Equal(t, 0, bsw.Streak)
}

func TestAggregateActivitySkipsAnonymousCommits(t *testing.T) {
	roster := models.Roster{"jsc": {Name: "장수철", Github: "Apple7575"}}

	var anonymous github.Commit
	anonymous.Commit.Author.Date = "2026-02-02T01:00:00Z"

	activities := AggregateActivity([]github.Commit{anonymous}, roster, kstDay(2026, 2, 2))
	assert.Empty(t, activities["jsc"].Dates)
}
