package services

import (
	"sort"

	"api/models"
)

// MatrixCell is one cell of the weekly progress matrix
type MatrixCell struct {
	BaseName   string             `json:"baseName"`
	Member     string             `json:"member"`
	Submission *models.Submission `json:"submission,omitempty"`
}

// WeeklyMatrixView is the weekly progress matrix: one row per distinct
// problem that week, one column per member who submitted that week
type WeeklyMatrixView struct {
	Week     string         `json:"week"`
	Problems []string       `json:"problems"` // row keys, sorted
	Members  []models.Member `json:"members"` // column keys, roster order
	Cells    []MatrixCell   `json:"cells"`
}

// WeeklyMatrix builds the matrix for one week. sourceFilter narrows the rows
// to one source ("" keeps all). A cell holds the highest-version submission
// for its (baseName, member) pair, or nothing.
func WeeklyMatrix(submissions []models.Submission, roster models.Roster, week, sourceFilter string) WeeklyMatrixView {
	bySlot := make(map[string]map[string]models.Submission)
	activeMembers := make(map[string]bool)
	problemSet := make(map[string]bool)

	for _, sub := range submissions {
		if sub.Week != week {
			continue
		}
		activeMembers[sub.Member] = true
		if sourceFilter != "" && sub.Source != sourceFilter {
			continue
		}
		problemSet[sub.BaseName] = true

		if bySlot[sub.BaseName] == nil {
			bySlot[sub.BaseName] = make(map[string]models.Submission)
		}
		best, exists := bySlot[sub.BaseName][sub.Member]
		if !exists || sub.VersionOrLegacy() > best.VersionOrLegacy() {
			bySlot[sub.BaseName][sub.Member] = sub
		}
	}

	problems := make([]string, 0, len(problemSet))
	for p := range problemSet {
		problems = append(problems, p)
	}
	sort.Strings(problems)

	var members []models.Member
	for _, member := range roster.Members() {
		if activeMembers[member.ID] {
			members = append(members, member)
		}
	}

	var cells []MatrixCell
	for _, problem := range problems {
		for _, member := range members {
			cell := MatrixCell{BaseName: problem, Member: member.ID}
			if sub, ok := bySlot[problem][member.ID]; ok {
				s := sub
				cell.Submission = &s
			}
			cells = append(cells, cell)
		}
	}

	return WeeklyMatrixView{Week: week, Problems: problems, Members: members, Cells: cells}
}

// RankingEntry is one leaderboard row
type RankingEntry struct {
	Member models.Member `json:"member"`
	Count  int           `json:"count"`
}

// RankTotals ranks members by total submission count, descending. Ties keep
// roster order.
func RankTotals(submissions []models.Submission, roster models.Roster) []RankingEntry {
	counts := make(map[string]int)
	for _, sub := range submissions {
		counts[sub.Member]++
	}
	return rank(roster, counts)
}

// RankStreaks ranks members by current streak, descending
func RankStreaks(activities models.Activities, roster models.Roster) []RankingEntry {
	counts := make(map[string]int)
	for id, activity := range activities {
		counts[id] = activity.Streak
	}
	return rank(roster, counts)
}

// RankWeekly ranks members by submission count within the most recent week
// present in the data
func RankWeekly(submissions []models.Submission, roster models.Roster) []RankingEntry {
	weeks := ExtractWeeks(submissions)
	if len(weeks) == 0 {
		return rank(roster, nil)
	}
	latest := weeks[0]

	counts := make(map[string]int)
	for _, sub := range submissions {
		if sub.Week == latest {
			counts[sub.Member]++
		}
	}
	return rank(roster, counts)
}

func rank(roster models.Roster, counts map[string]int) []RankingEntry {
	entries := make([]RankingEntry, 0, len(roster))
	for _, member := range roster.Members() {
		entries = append(entries, RankingEntry{Member: member, Count: counts[member.ID]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// WeekGroup is one member's submissions for one week, in parser order
type WeekGroup struct {
	Week        string              `json:"week"`
	Submissions []models.Submission `json:"submissions"`
}

// GroupByWeek groups a member's submissions by week, newest week first.
// Input is expected in parser order, which the groups preserve.
func GroupByWeek(memberSubmissions []models.Submission) []WeekGroup {
	var groups []WeekGroup
	index := make(map[string]int)
	for _, sub := range memberSubmissions {
		i, ok := index[sub.Week]
		if !ok {
			i = len(groups)
			index[sub.Week] = i
			groups = append(groups, WeekGroup{Week: sub.Week})
		}
		groups[i].Submissions = append(groups[i].Submissions, sub)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Week > groups[j].Week
	})
	return groups
}

// OtherSolutions returns all submissions sharing the given submission's
// baseName, across members and versions, excluding the submission itself
func OtherSolutions(submissions []models.Submission, target models.Submission) []models.Submission {
	var others []models.Submission
	for _, sub := range submissions {
		if sub.BaseName == target.BaseName && sub.ID != target.ID {
			others = append(others, sub)
		}
	}
	return others
}

// FilterSubmissions narrows the collection by member, week and source; empty
// values keep everything
func FilterSubmissions(submissions []models.Submission, member, week, source string) []models.Submission {
	var out []models.Submission
	for _, sub := range submissions {
		if member != "" && sub.Member != member {
			continue
		}
		if week != "" && sub.Week != week {
			continue
		}
		if source != "" && sub.Source != source {
			continue
		}
		out = append(out, sub)
	}
	return out
}
