package services

import (
	"strconv"
	"strings"
	"testing"

	"api/github"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() models.Roster {
	return models.Roster{
		"jsc": {Name: "장수철", Github: "Apple7575"},
		"bsw": {Name: "백승우", Github: "bsw1206"},
		"lhw": {Name: "이현우", Github: "balbi-hw"},
	}
}

func blob(path string) github.TreeItem {
	return github.TreeItem{Path: path, Type: "blob", Mode: "100644"}
}

func testTree() []github.TreeItem {
	return []github.TreeItem{
		blob("jsc/26-01-w4/swea-4869.py"),
		blob("jsc/26-01-w4/swea-4869.md"),
		blob("jsc/26-01-w4/1984.py"),
		blob("jsc/26-01-w5/boj-2346.py"),
		blob("jsc/26-01-w5/boj-2346-v2.py"),
		blob("jsc/26-02-w1/swea-2005.py"),
		blob("bsw/26-02-w1/swea-1974.py"),
		blob("lhw/26-02-w1/이현우.py"),
		// junk: wrong depth, unknown member, malformed week, note without code
		blob("README.md"),
		blob("docs/setup/guide.py"),
		blob("ghost/26-02-w1/boj-1000.py"),
		blob("jsc/week-two/boj-1000.py"),
		blob("jsc/26-01-w5/boj-1966.md"),
		{Path: "jsc/26-01-w4", Type: "tree"},
	}
}

func TestParseTree(t *testing.T) {
	subs := ParseTree(testTree(), testRoster())
	require.Len(t, subs, 7)

	// Week descending, name ascending within a week
	expectedIDs := []string{
		"bsw/26-02-w1/swea-1974",
		"jsc/26-02-w1/swea-2005",
		"lhw/26-02-w1/이현우",
		"jsc/26-01-w5/boj-2346",
		"jsc/26-01-w5/boj-2346-v2",
		"jsc/26-01-w4/1984",
		"jsc/26-01-w4/swea-4869",
	}
	for i, sub := range subs {
		assert.Equal(t, expectedIDs[i], sub.ID)
	}
}

func TestParseTreeIdempotent(t *testing.T) {
	first := ParseTree(testTree(), testRoster())
	second := ParseTree(testTree(), testRoster())
	assert.Equal(t, first, second)
}

func TestParseTreeInvariants(t *testing.T) {
	for _, sub := range ParseTree(testTree(), testRoster()) {
		assert.Len(t, strings.Split(sub.Path, "/"), 3, "path %q must have three segments", sub.Path)

		if sub.Version != nil {
			assert.Equal(t, sub.Name, sub.BaseName+"-v"+strconv.Itoa(*sub.Version))
		} else {
			assert.Equal(t, sub.Name, sub.BaseName)
		}
		assert.True(t, testRoster().Has(sub.Member))
	}
}

func TestParseTreeVersionSuffix(t *testing.T) {
	subs := ParseTree(testTree(), testRoster())

	byID := make(map[string]models.Submission)
	for _, sub := range subs {
		byID[sub.ID] = sub
	}

	legacy := byID["jsc/26-01-w5/boj-2346"]
	assert.Nil(t, legacy.Version)
	assert.Equal(t, "boj-2346", legacy.BaseName)

	v2 := byID["jsc/26-01-w5/boj-2346-v2"]
	require.NotNil(t, v2.Version)
	assert.Equal(t, 2, *v2.Version)
	assert.Equal(t, "boj-2346", v2.BaseName)
}

func TestParseTreeNotes(t *testing.T) {
	subs := ParseTree(testTree(), testRoster())

	for _, sub := range subs {
		if sub.ID == "jsc/26-01-w4/swea-4869" {
			assert.True(t, sub.HasNote)
			require.NotNil(t, sub.NotePath)
			assert.Equal(t, "jsc/26-01-w4/swea-4869.md", *sub.NotePath)
		}
		if sub.ID == "jsc/26-02-w1/swea-2005" {
			assert.False(t, sub.HasNote)
			assert.Nil(t, sub.NotePath)
		}
	}
}

func TestParseTreeNonASCIIFilename(t *testing.T) {
	subs := ParseTree(testTree(), testRoster())
	for _, sub := range subs {
		if sub.ID == "lhw/26-02-w1/이현우" {
			assert.Equal(t, "etc", sub.Source)
			return
		}
	}
	t.Fatal("non-ASCII filename was dropped")
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"swea-1284.py", "swea"},
		{"SWEA_4869.py", "swea"},
		{"boj-2346.py", "boj"},
		{"BOJ_1000.py", "boj"},
		{"ws-04-04.py", "etc"},
		{"이현우.py", "etc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSource(tt.filename), tt.filename)
	}
}

func TestSourceFromCode(t *testing.T) {
	assert.Equal(t, "boj", SourceFromCode("# @source: boj\nprint(1)"))
	assert.Equal(t, "swea", SourceFromCode("x = 1\n# @source: SWEA\n"))
	assert.Equal(t, "etc", SourceFromCode("# @source: leetcode\n"))
	assert.Equal(t, "", SourceFromCode("print(1)"))
}

func TestAllocateVersion(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		key      string
		want     int
		wantFile string
	}{
		{"empty directory", nil, "boj-2346", 1, "boj-2346-v1.py"},
		{"versioned files", []string{"boj-10-v1.py", "boj-10-v2.py"}, "boj-10", 3, "boj-10-v3.py"},
		{"legacy only", []string{"boj-10.py"}, "boj-10", 2, "boj-10-v2.py"},
		{"legacy plus versioned", []string{"boj-10.py", "boj-10-v3.py"}, "boj-10", 4, "boj-10-v4.py"},
		{"other problems ignored", []string{"boj-99-v5.py", "swea-10-v2.py"}, "boj-10", 1, "boj-10-v1.py"},
		{"note files ignored", []string{"boj-10-v1.md"}, "boj-10", 1, "boj-10-v1.py"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, filename := AllocateVersion(tt.existing, tt.key)
			assert.Equal(t, tt.want, version)
			assert.Equal(t, tt.wantFile, filename)
		})
	}
}

func TestAllocateVersionIdempotent(t *testing.T) {
	existing := []string{"boj-10.py", "boj-10-v3.py"}
	v1, f1 := AllocateVersion(existing, "boj-10")
	v2, f2 := AllocateVersion(existing, "boj-10")
	assert.Equal(t, v1, v2)
	assert.Equal(t, f1, f2)
}

func TestExtractWeeks(t *testing.T) {
	subs := ParseTree(testTree(), testRoster())
	assert.Equal(t, []string{"26-02-w1", "26-01-w5", "26-01-w4"}, ExtractWeeks(subs))
}

func TestProblemURL(t *testing.T) {
	assert.Equal(t, "https://www.acmicpc.net/problem/2346", ProblemURL("boj-2346-v2", "boj"))
	assert.Contains(t, ProblemURL("swea-1284", "swea"), "problemTitle=1284")
	assert.Equal(t, "", ProblemURL("이현우", "etc"))
	assert.Equal(t, "", ProblemURL("notes", "boj"))
}
