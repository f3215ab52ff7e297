package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// Workbook is a Source backed by an Excel workbook. Every sheet is one
// innings block, unless the sheet defines print areas, in which case every
// print area is one block.
type Workbook struct {
	path string
	url  string
}

// OpenWorkbook checks that path is a readable workbook and records its
// source URL from the document properties.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, scorestruct.NewSourceError(path, "workbook",
			fmt.Errorf("%w: %v", scorestruct.ErrInvalidFormat, err))
	}
	defer f.Close()

	// Default to the file name when no URL was recorded
	w := &Workbook{path: path, url: filepath.Base(path)}
	if props, err := f.GetDocProps(); err == nil {
		// The identifier holds the page URL when the workbook was captured
		// from a live scorecard; the description is the older convention.
		for _, candidate := range []string{props.Identifier, props.Description} {
			if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
				w.url = candidate
				break
			}
		}
	}
	return w, nil
}

// URL returns the recorded page URL, or the workbook file name.
func (w *Workbook) URL() string {
	return w.url
}

// Blocks reads every sheet and returns its innings blocks in sheet order.
func (w *Workbook) Blocks(ctx context.Context) ([]models.InningsBlock, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, scorestruct.NewSourceError(w.path, "workbook", err)
	}
	defer f.Close()

	// Print areas split a sheet into several innings
	printAreas, err := ExtractPrintAreas(f)
	if err != nil {
		return nil, scorestruct.NewSourceError(w.path, "print_areas", err)
	}

	var blocks []models.InningsBlock
	for _, sheetName := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, scorestruct.NewSourceError(w.path, "workbook",
				fmt.Errorf("sheet %q: %w", sheetName, err))
		}

		// Without print areas the whole sheet is one innings
		areas := printAreas[sheetName]
		if len(areas) == 0 {
			if len(rows) > 0 {
				blocks = append(blocks, sheetBlock(sheetName, rows))
			}
			continue
		}
		for _, area := range areas {
			if clipped := clipRows(rows, area); len(clipped) > 0 {
				blocks = append(blocks, sheetBlock(sheetName, clipped))
			}
		}
	}
	return blocks, nil
}

// SheetRow is one non-empty worksheet row.
type SheetRow struct {
	// R is the row index (1-based).
	R int
	// Cells holds the cell text by column; Cells[0] is column A.
	Cells []string
}

// ExtractRows returns the non-empty rows of a sheet with their row numbers.
func ExtractRows(f *excelize.File, sheetName string) ([]SheetRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []SheetRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		hasData := false
		for _, cellValue := range row {
			if strings.TrimSpace(cellValue) != "" {
				hasData = true
				break
			}
		}
		if hasData {
			result = append(result, SheetRow{R: rowNum, Cells: row})
		}
	}
	return result, nil
}

// clipRows restricts rows to the bounds of area.
func clipRows(rows []SheetRow, area models.PrintArea) []SheetRow {
	var clipped []SheetRow
	for _, row := range rows {
		if !area.ContainsRow(row.R) {
			continue
		}
		// Keep only columns inside the area
		var cells []string
		for colIdx, v := range row.Cells {
			if area.ContainsCol(colIdx + 1) {
				cells = append(cells, v)
			}
		}
		if strings.TrimSpace(strings.Join(cells, "")) != "" {
			clipped = append(clipped, SheetRow{R: row.R, Cells: cells})
		}
	}
	return clipped
}

// sheetBlock turns worksheet rows into an innings block. A leading row with a
// single filled cell is the innings title; the sheet name is the fallback.
func sheetBlock(sheetName string, rows []SheetRow) models.InningsBlock {
	block := models.InningsBlock{Rows: make([]models.Row, len(rows))}
	for i, r := range rows {
		block.Rows[i] = models.Row(r.Cells)
	}
	first := block.Rows[0]
	block.HeaderCandidates = []models.HeaderSource{
		func() string { return titleCell(first) },
		models.StaticHeader(sheetName),
	}
	block.FullText = joinRows(block.Rows)
	return block
}

func titleCell(row models.Row) string {
	title := ""
	for _, c := range row {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if title != "" {
			return ""
		}
		title = c
	}
	return title
}
