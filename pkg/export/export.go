// Package export serializes farm data and prediction logs for download.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
)

// PlotRow is one export line: plot identity columns plus the latest reading
// per sensor type present on the plot.
type PlotRow struct {
	FarmName string
	State    string
	District string
	PlotID   string
	Crop     string
	AreaSqM  *float64
	SoilType *string
	Readings map[entities.SensorType]float64
}

func identityHeader() []string {
	return []string{"farm_name", "state", "district", "plot_id", "crop", "areaSqM", "soil_type"}
}

func rowCells(row PlotRow, types []entities.SensorType) []string {
	cells := []string{row.FarmName, row.State, row.District, row.PlotID, row.Crop}
	if row.AreaSqM != nil {
		cells = append(cells, formatFloat(*row.AreaSqM))
	} else {
		cells = append(cells, "")
	}
	if row.SoilType != nil {
		cells = append(cells, *row.SoilType)
	} else {
		cells = append(cells, "")
	}
	for _, t := range types {
		if v, ok := row.Readings[t]; ok {
			cells = append(cells, formatFloat(v))
		} else {
			cells = append(cells, "")
		}
	}
	return cells
}

// FarmCSV writes the identity columns followed by one column per sensor type.
func FarmCSV(rows []PlotRow, types []entities.SensorType) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := identityHeader()
	for _, t := range types {
		header = append(header, string(t))
	}
	if err := w.Write(header); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write csv", err)
	}
	for _, row := range rows {
		if err := w.Write(rowCells(row, types)); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "write csv", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write csv", err)
	}
	return buf.Bytes(), nil
}

// FarmXLSX writes the same layout as FarmCSV into a single-sheet workbook.
func FarmXLSX(rows []PlotRow, types []entities.SensorType) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Sheet1"
	header := identityHeader()
	for _, t := range types {
		header = append(header, string(t))
	}
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := x.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write xlsx", err)
	}
	for i, row := range rows {
		cells := rowCells(row, types)
		out := make([]any, len(cells))
		for j, cell := range cells {
			out[j] = cell
		}
		addr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(sheet, addr, &out); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "write xlsx", err)
		}
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write xlsx", err)
	}
	return buf.Bytes(), nil
}

// PredictionsCSV serializes a prediction log; the input payload is embedded as
// a JSON string column.
func PredictionsCSV(ps []entities.Prediction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "plotId", "type", "result", "createdAt", "input"}); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write csv", err)
	}
	for _, p := range ps {
		input, _ := json.Marshal(p.Input)
		rec := []string{
			p.ID,
			p.PlotID,
			string(p.Type),
			formatFloat(p.Result),
			p.CreatedAt.Format(time.RFC3339),
			string(input),
		}
		if err := w.Write(rec); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "write csv", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "write csv", err)
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
