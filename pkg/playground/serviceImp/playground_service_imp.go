package serviceImp

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/playground/repository"
)

type PlaygroundSvc struct {
	repo   repo.GridRepository
	logger *zap.Logger
}

func New(repo repo.GridRepository, logger *zap.Logger) *PlaygroundSvc {
	return &PlaygroundSvc{repo: repo, logger: logger}
}

// ImportCSV parses the uploaded grid file, allocates the next free "Farm N"
// name and inserts the cells into both grids. Returns the new farm and the
// number of imported cells.
func (s *PlaygroundSvc) ImportCSV(r io.Reader) (*entities.Farm, int, error) {
	cells, err := parseGridCSV(r)
	if err != nil {
		return nil, 0, err
	}

	names, err := s.repo.FarmNames()
	if err != nil {
		return nil, 0, err
	}
	farm := &entities.Farm{Name: nextFarmName(names)}
	if err := s.repo.ImportGrids(farm, cells); err != nil {
		return nil, 0, err
	}
	s.logger.Info("imported grid CSV",
		zap.String("farm", farm.Name),
		zap.Int("cells", len(cells)))
	return farm, len(cells), nil
}

var farmNumRe = regexp.MustCompile(`^Farm (\d+)$`)

// nextFarmName picks the smallest N not already used by a "Farm N" farm.
func nextFarmName(names []string) string {
	var nums []int
	for _, name := range names {
		if m := farmNumRe.FindStringSubmatch(name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				nums = append(nums, n)
			}
		}
	}
	sort.Ints(nums)
	next := 1
	for _, n := range nums {
		if n == next {
			next++
		} else if n > next {
			break
		}
	}
	return fmt.Sprintf("Farm %d", next)
}

func (s *PlaygroundSvc) Farms() ([]entities.Farm, error) { return s.repo.ListFarms() }

func (s *PlaygroundSvc) Actual(farmID string) ([]entities.ActualGrid, error) {
	return s.repo.ActualByFarm(farmID)
}

func (s *PlaygroundSvc) Experimental(farmID string) ([]entities.ExperimentalGrid, error) {
	return s.repo.ExperimentalByFarm(farmID)
}

type CellPatch struct {
	CropCount     *int     `json:"cropCount"`
	WaterLevel    *float64 `json:"waterLevel"`
	MoistureLevel *float64 `json:"moistureLevel"`
	GrowthStage   *string  `json:"growthStage"`
}

func (s *PlaygroundSvc) PatchCell(id string, patch CellPatch) (*entities.ExperimentalGrid, error) {
	cell, err := s.repo.FindExperimentalCell(id)
	if err != nil {
		return nil, err
	}
	if patch.CropCount != nil {
		cell.CropCount = *patch.CropCount
	}
	if patch.WaterLevel != nil {
		cell.WaterLevel = *patch.WaterLevel
	}
	if patch.MoistureLevel != nil {
		cell.MoistureLevel = *patch.MoistureLevel
	}
	if patch.GrowthStage != nil {
		stage := entities.GrowthStage(*patch.GrowthStage)
		if !stage.Valid() {
			return nil, apperr.Newf(apperr.Validation, "invalid growth stage: %s", *patch.GrowthStage)
		}
		cell.GrowthStage = stage
	}
	if err := s.repo.SaveExperimentalCell(cell); err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *PlaygroundSvc) Reset(farmID string) error {
	return s.repo.ResetExperimental(farmID)
}

func (s *PlaygroundSvc) DeleteFarm(farmID string) error {
	return s.repo.DeleteFarm(farmID)
}
