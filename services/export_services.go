package services

import (
	"bytes"
	"fmt"

	"api/models"

	"github.com/xuri/excelize/v2"
)

// ExportLeaderboard renders the three leaderboards into one xlsx workbook
func ExportLeaderboard(submissions []models.Submission, activities models.Activities, roster models.Roster) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		header  string
		entries []RankingEntry
	}{
		{"Total", "Total submissions", RankTotals(submissions, roster)},
		{"Streak", "Current streak", RankStreaks(activities, roster)},
		{"Weekly", "Latest week submissions", RankWeekly(submissions, roster)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.name)
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, err
			}
		}

		f.SetCellValue(sheet.name, "A1", "Rank")
		f.SetCellValue(sheet.name, "B1", "Member")
		f.SetCellValue(sheet.name, "C1", "Handle")
		f.SetCellValue(sheet.name, "D1", sheet.header)

		for row, entry := range sheet.entries {
			f.SetCellValue(sheet.name, fmt.Sprintf("A%d", row+2), row+1)
			f.SetCellValue(sheet.name, fmt.Sprintf("B%d", row+2), entry.Member.Name)
			f.SetCellValue(sheet.name, fmt.Sprintf("C%d", row+2), entry.Member.Github)
			f.SetCellValue(sheet.name, fmt.Sprintf("D%d", row+2), entry.Count)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
