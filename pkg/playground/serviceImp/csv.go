package serviceImp

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
)

// cells per grid row when the file carries no row/column columns
const gridWidth = 6

// parseGridCSV reads an uploaded grid file. The header row is matched
// case-insensitively and ignoring spaces, dashes and underscores, so files
// exported from spreadsheets with slightly different headers still load.
func parseGridCSV(r io.Reader) ([]entities.GridCell, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, apperr.New(apperr.Validation, "empty or unreadable CSV file")
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("cropType", "crop")
	cCount := findAny("cropCount", "count")
	cWater := findAny("waterLevel", "water")
	cMoist := findAny("moistureLevel", "moisture")
	cStage := findAny("growthStage", "stage")
	cRow := findAny("row")
	cCol := findAny("column", "col")

	if cCrop == -1 {
		return nil, apperr.Newf(apperr.Validation,
			"CSV missing required cropType column; found headers: %v", head)
	}

	var cells []entities.GridCell
	idx := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, apperr.Wrap(apperr.Validation, "malformed CSV", err)
		}
		get := func(i int) string {
			if i < 0 || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		cropType := get(cCrop)
		if cropType == "" {
			continue // skip blank rows
		}

		stage := entities.StageSeedling
		if v := get(cStage); v != "" {
			parsed, ok := entities.ParseGrowthStage(v)
			if !ok {
				return nil, apperr.Newf(apperr.Validation, "invalid growth stage: %s", v)
			}
			stage = parsed
		}

		cell := entities.GridCell{
			CropType:      cropType,
			CropCount:     atoiOr0(get(cCount)),
			WaterLevel:    atofOr0(get(cWater)),
			MoistureLevel: atofOr0(get(cMoist)),
			GrowthStage:   stage,
			Row:           idx / gridWidth,
			Column:        idx % gridWidth,
		}
		if v := get(cRow); v != "" {
			cell.Row = atoiOr0(v)
		}
		if v := get(cCol); v != "" {
			cell.Column = atoiOr0(v)
		}
		cells = append(cells, cell)
		idx++
	}

	if len(cells) == 0 {
		return nil, apperr.New(apperr.Validation, "no valid rows found in CSV")
	}
	return cells, nil
}

func atoiOr0(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atofOr0(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
