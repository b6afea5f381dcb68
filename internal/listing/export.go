package listing

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/banit/househunt-backend/internal/types"
)

const rankingSheet = "Manager Ranking"

var rankingHeaders = []string{
	"Rank", "Manager", "Email", "Phone", "County",
	"Average Rating", "Total Reviews", "Active Houses", "Houses",
}

// ExportRankingXLSX renders ranked summaries as a spreadsheet, one manager
// per row in the given order.
func ExportRankingXLSX(summaries []types.ManagerSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rankingSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range rankingHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(rankingHeaders), 1)
	if err := f.SetCellStyle(rankingSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, s := range summaries {
		row := i + 2
		values := []interface{}{
			i + 1, s.Name, s.Email, s.Phone, s.County,
			s.AverageRatings, s.TotalReviews, s.ActiveHouses, len(s.Houses),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(rankingSheet, "B", "C", 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(rankingSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
