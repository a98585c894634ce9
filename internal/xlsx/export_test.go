package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/autohub/autohub-cli/internal/client/models"
)

func TestExportCars(t *testing.T) {
	cars := []models.Car{
		{ID: "c1", Name: "Civic", Year: 2020, Price: "18000", Mileage: 42000, Transmission: "Manual", Fuel: "Petrol", Engine: "1.5L", Color: "Blue"},
		{ID: "c2", Name: "Accord", Year: 2018, Price: "22000"},
	}
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, ExportCars(cars, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "ID", rows[0][0])
	require.Equal(t, "Civic", rows[1][1])
	require.Equal(t, "2020", rows[1][2])
	require.Equal(t, "Accord", rows[2][1])
}

func TestExportCars_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ExportCars(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportCars_BadPath(t *testing.T) {
	err := ExportCars(nil, filepath.Join(t.TempDir(), "missing-dir", "out.xlsx"))
	require.Error(t, err)
}
