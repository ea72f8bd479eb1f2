package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"api/cache"
	"api/github"
	"api/models"
	"api/utils"
)

// FetchActivity aggregates commit history into per-member activity. The
// result is cached for the standard window since the history fetch is
// paginated and bounded.
func FetchActivity(ctx context.Context, client *github.Client, roster models.Roster) (models.Activities, error) {
	if raw, ok := client.Cache().Get(cache.KeyActivity); ok {
		var activities models.Activities
		if err := json.Unmarshal(raw, &activities); err == nil {
			return activities, nil
		}
	}

	since := time.Now().Add(-github.HistoryLookback)
	commits, err := client.Commits(ctx, since)
	if err != nil {
		return nil, err
	}

	activities := AggregateActivity(commits, roster, time.Now())
	if raw, err := json.Marshal(activities); err == nil {
		client.Cache().Set(cache.KeyActivity, raw, cache.DefaultTTL)
	}
	return activities, nil
}

// AggregateActivity maps commits to roster members by their external handle
// and derives each member's distinct KST activity dates and weekday streak.
// Multiple commits on the same calendar day count once.
func AggregateActivity(commits []github.Commit, roster models.Roster, now time.Time) models.Activities {
	handleToMember := make(map[string]string)
	for _, member := range roster.Members() {
		handleToMember[strings.ToLower(member.Github)] = member.ID
	}

	memberDates := make(map[string]map[string]bool)
	for _, commit := range commits {
		if commit.Author == nil || commit.Author.Login == "" {
			continue
		}
		memberID, ok := handleToMember[strings.ToLower(commit.Author.Login)]
		if !ok {
			continue
		}

		ts, err := time.Parse(time.RFC3339, commit.Commit.Author.Date)
		if err != nil {
			continue
		}
		date := utils.KSTDate(ts)
		if memberDates[memberID] == nil {
			memberDates[memberID] = make(map[string]bool)
		}
		memberDates[memberID][date] = true
	}

	activities := make(models.Activities, len(roster))
	for id := range roster {
		dates := make([]string, 0, len(memberDates[id]))
		for date := range memberDates[id] {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		activities[id] = models.MemberActivity{
			Dates:  dates,
			Streak: CalculateStreak(dates, now),
		}
	}
	return activities
}

// CalculateStreak counts consecutive weekday activity dates ending at "today"
// on the KST calendar. Saturdays and Sundays are skipped entirely, so a
// Friday entry directly followed by a Monday entry is still consecutive.
// If today has no activity, one grace weekday is allowed: the streak is
// counted from the previous weekday if that one is present, otherwise it is 0.
func CalculateStreak(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}

	kst := now.In(utils.KST)
	current := time.Date(kst.Year(), kst.Month(), kst.Day(), 0, 0, 0, 0, utils.KST)
	for isWeekend(current) {
		current = previousWeekday(current)
	}

	if !dateSet[current.Format("2006-01-02")] {
		current = previousWeekday(current)
		if !dateSet[current.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for dateSet[current.Format("2006-01-02")] {
		streak++
		current = previousWeekday(current)
	}
	return streak
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func previousWeekday(t time.Time) time.Time {
	prev := t.AddDate(0, 0, -1)
	for isWeekend(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}
