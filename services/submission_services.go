package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"api/github"
	"api/models"
	"api/utils"
)

const codeExt = ".py"
const noteExt = ".md"

var versionSuffix = regexp.MustCompile(`^(.*)-v(\d+)$`)
var sourceAnnotation = regexp.MustCompile(`(?m)^#\s*@source:\s*(\w+)`)

// ParseSource classifies a filename by prefix. Matching is case-insensitive.
func ParseSource(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasPrefix(lower, "swea-") || strings.HasPrefix(lower, "swea_") {
		return "swea"
	}
	if strings.HasPrefix(lower, "boj-") || strings.HasPrefix(lower, "boj_") {
		return "boj"
	}
	return "etc"
}

// SourceFromCode reads an in-file source annotation ("# @source: boj") and
// returns the override, or "" when the file carries none
func SourceFromCode(code string) string {
	match := sourceAnnotation.FindStringSubmatch(code)
	if match == nil {
		return ""
	}
	switch strings.ToLower(match[1]) {
	case "swea":
		return "swea"
	case "boj":
		return "boj"
	default:
		return "etc"
	}
}

// ParseTree turns a raw recursive tree listing into the submission collection.
// Junk paths are dropped, never errored: entries outside the member/week/file
// shape, under unknown members, or under malformed week directories are
// deliberately ignored so a partially messy repository still renders.
//
// The result is sorted by week descending, then name ascending. Adjacency
// features (prev/next navigation) depend on this exact order.
func ParseTree(tree []github.TreeItem, roster models.Roster) []models.Submission {
	notes := make(map[string]bool)
	for _, item := range tree {
		if item.Type == "blob" && strings.HasSuffix(item.Path, noteExt) {
			notes[strings.TrimSuffix(item.Path, noteExt)] = true
		}
	}

	var submissions []models.Submission
	for _, item := range tree {
		if item.Type != "blob" || !strings.HasSuffix(item.Path, codeExt) {
			continue
		}

		parts := strings.Split(item.Path, "/")
		if len(parts) != 3 {
			continue
		}
		memberID, week, filename := parts[0], parts[1], parts[2]
		if !roster.Has(memberID) {
			continue
		}
		if !utils.IsValidWeek(week) {
			continue
		}

		name := strings.TrimSuffix(filename, codeExt)
		baseName, version := splitVersion(name)
		basePath := strings.TrimSuffix(item.Path, codeExt)

		sub := models.Submission{
			ID:       memberID + "/" + week + "/" + name,
			Member:   memberID,
			Week:     week,
			Name:     name,
			BaseName: baseName,
			Version:  version,
			Source:   ParseSource(filename),
			Path:     item.Path,
		}
		if notes[basePath] {
			notePath := basePath + noteExt
			sub.HasNote = true
			sub.NotePath = &notePath
		}
		submissions = append(submissions, sub)
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		if submissions[i].Week != submissions[j].Week {
			return submissions[i].Week > submissions[j].Week
		}
		return submissions[i].Name < submissions[j].Name
	})
	return submissions
}

// splitVersion strips a trailing -vN suffix. No suffix means a legacy
// unversioned name.
func splitVersion(name string) (baseName string, version *int) {
	match := versionSuffix.FindStringSubmatch(name)
	if match == nil {
		return name, nil
	}
	v, err := strconv.Atoi(match[2])
	if err != nil || v <= 0 {
		return name, nil
	}
	return match[1], &v
}

// AllocateVersion computes the next safe version for a new submission of
// problemKey ("{source}-{number}") given the target directory's current file
// names. A bare legacy file ("{problemKey}.py") is implicitly version 1 and is
// never overwritten: its presence forces the next version to at least 2.
// Pure function of the listing, so repeated calls over unchanged input are
// idempotent.
func AllocateVersion(existingFilenames []string, problemKey string) (int, string) {
	versioned := regexp.MustCompile(`^` + regexp.QuoteMeta(problemKey) + `-v(\d+)\` + codeExt + `$`)
	legacyName := problemKey + codeExt

	maxVersion := 0
	hasLegacy := false
	for _, filename := range existingFilenames {
		if match := versioned.FindStringSubmatch(filename); match != nil {
			if v, err := strconv.Atoi(match[1]); err == nil && v > maxVersion {
				maxVersion = v
			}
		}
		if filename == legacyName {
			hasLegacy = true
		}
	}

	next := 1
	if hasLegacy {
		next = maxVersion + 1
		if next < 2 {
			next = 2
		}
	} else if maxVersion > 0 {
		next = maxVersion + 1
	}

	return next, fmt.Sprintf("%s-v%d%s", problemKey, next, codeExt)
}

// ExtractWeeks returns the distinct week tokens present, newest first
func ExtractWeeks(submissions []models.Submission) []string {
	seen := make(map[string]bool)
	var weeks []string
	for _, sub := range submissions {
		if !seen[sub.Week] {
			seen[sub.Week] = true
			weeks = append(weeks, sub.Week)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks
}

// ProblemURL builds the judge site link for a submission name, or "" when the
// name carries no problem number or the source has no site
func ProblemURL(name, source string) string {
	match := regexp.MustCompile(`(\d+)`).FindStringSubmatch(name)
	if match == nil {
		return ""
	}
	num := match[1]
	switch source {
	case "boj":
		return "https://www.acmicpc.net/problem/" + num
	case "swea":
		return "https://swexpertacademy.com/main/code/problem/problemList.do?problemTitle=" + num
	default:
		return ""
	}
}
