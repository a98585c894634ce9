// Package xlsx writes a user's listings to an Excel workbook.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/autohub/autohub-cli/internal/client/models"
)

const sheetName = "My Cars"

// ExportCars writes one row per listing to path, overwriting any existing
// file. Column order matches what the profile screen shows.
func ExportCars(cars []models.Car, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Year", "Price", "Mileage", "Transmission", "Fuel", "Engine", "Color"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for idx, c := range cars {
		row := idx + 2
		values := []any{c.ID, c.Name, c.Year, c.Price.String(), c.Mileage, c.Transmission, c.Fuel, c.Engine, c.Color}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
