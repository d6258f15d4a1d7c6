package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmtwin/database"
	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repoImp "farmtwin/pkg/playground/repositoryImp"
)

const sampleCSV = `cropType,cropCount,waterLevel,moistureLevel,growthStage
Wheat,10,3.5,42,Seedling
Corn,8,2.0,38,Vegetative
Soybean,12,4.1,55,Flowering
`

func newTestSvc(t *testing.T) (*PlaygroundSvc, *gorm.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(repoImp.New(db), zap.NewNop()), db
}

func TestImportCSVCreatesBothGrids(t *testing.T) {
	svc, _ := newTestSvc(t)

	farm, n, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Farm 1", farm.Name)

	actual, err := svc.Actual(farm.ID)
	require.NoError(t, err)
	require.Len(t, actual, 3)
	assert.Equal(t, "Wheat", actual[0].CropType)
	assert.Equal(t, entities.StageSeedling, actual[0].GrowthStage)
	// cells flow left to right across a 6-wide grid
	assert.Equal(t, 0, actual[1].Row)
	assert.Equal(t, 1, actual[1].Column)

	exp, err := svc.Experimental(farm.ID)
	require.NoError(t, err)
	require.Len(t, exp, 3)
	assert.NotEqual(t, actual[0].ID, exp[0].ID)
}

func TestImportCSVPicksSmallestFreeFarmNumber(t *testing.T) {
	svc, _ := newTestSvc(t)

	f1, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, "Farm 1", f1.Name)
	f2, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, "Farm 2", f2.Name)

	require.NoError(t, svc.DeleteFarm(f2.ID))
	f3, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, "Farm 2", f3.Name)
}

func TestImportCSVRejectsEmptyFile(t *testing.T) {
	svc, _ := newTestSvc(t)

	_, _, err := svc.ImportCSV(strings.NewReader("cropType,cropCount\n"))
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	farms, err := svc.Farms()
	require.NoError(t, err)
	assert.Empty(t, farms)
}

func TestImportCSVRejectsUnknownGrowthStage(t *testing.T) {
	svc, _ := newTestSvc(t)

	bad := "cropType,growthStage\nWheat,Sprouting\n"
	_, _, err := svc.ImportCSV(strings.NewReader(bad))
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "Sprouting")
}

func TestImportCSVToleratesHeaderVariants(t *testing.T) {
	svc, _ := newTestSvc(t)

	variant := "Crop Type,crop_count,water-level,Moisture Level,Growth Stage\nWheat,5,1.5,30,mature\n"
	farm, n, err := svc.ImportCSV(strings.NewReader(variant))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	actual, err := svc.Actual(farm.ID)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, 5, actual[0].CropCount)
	assert.Equal(t, entities.StageMature, actual[0].GrowthStage)
}

func TestPatchCellAndReset(t *testing.T) {
	svc, _ := newTestSvc(t)

	farm, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	exp, err := svc.Experimental(farm.ID)
	require.NoError(t, err)

	count := 99
	stage := string(entities.StageHarvested)
	patched, err := svc.PatchCell(exp[0].ID, CellPatch{CropCount: &count, GrowthStage: &stage})
	require.NoError(t, err)
	assert.Equal(t, 99, patched.CropCount)
	assert.Equal(t, entities.StageHarvested, patched.GrowthStage)
	// untouched fields survive the patch
	assert.Equal(t, exp[0].WaterLevel, patched.WaterLevel)

	require.NoError(t, svc.Reset(farm.ID))
	fresh, err := svc.Experimental(farm.ID)
	require.NoError(t, err)
	require.Len(t, fresh, 3)
	for _, cell := range fresh {
		assert.NotEqual(t, 99, cell.CropCount)
		assert.NotEqual(t, entities.StageHarvested, cell.GrowthStage)
	}
}

func TestPatchCellRejectsBadStage(t *testing.T) {
	svc, _ := newTestSvc(t)

	farm, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	exp, err := svc.Experimental(farm.ID)
	require.NoError(t, err)

	bad := "Wilted"
	_, err = svc.PatchCell(exp[0].ID, CellPatch{GrowthStage: &bad})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestDeleteFarmRemovesGrids(t *testing.T) {
	svc, db := newTestSvc(t)

	farm, _, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFarm(farm.ID))

	var actual, exp int64
	require.NoError(t, db.Model(&entities.ActualGrid{}).Where("farm_id = ?", farm.ID).Count(&actual).Error)
	require.NoError(t, db.Model(&entities.ExperimentalGrid{}).Where("farm_id = ?", farm.ID).Count(&exp).Error)
	assert.Zero(t, actual)
	assert.Zero(t, exp)

	err = svc.DeleteFarm(farm.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
