package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/playground/repository"
)

type gridRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GridRepository { return &gridRepo{db} }

func (r *gridRepo) FarmNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&entities.Farm{}).Pluck("name", &names).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list farm names", err)
	}
	return names, nil
}

func (r *gridRepo) ListFarms() ([]entities.Farm, error) {
	var fs []entities.Farm
	if err := r.db.Select("id", "name").Order("created_at ASC").Find(&fs).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list farms", err)
	}
	return fs, nil
}

func (r *gridRepo) ImportGrids(farm *entities.Farm, cells []entities.GridCell) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(farm).Error; err != nil {
			return err
		}
		actual := make([]entities.ActualGrid, len(cells))
		experimental := make([]entities.ExperimentalGrid, len(cells))
		for i, cell := range cells {
			cell.ID = ""
			cell.FarmID = farm.ID
			actual[i] = entities.ActualGrid{GridCell: cell}
			experimental[i] = entities.ExperimentalGrid{GridCell: cell}
		}
		if err := tx.CreateInBatches(actual, 500).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(experimental, 500).Error
	})
	if err != nil {
		return apperr.Wrap(apperr.Storage, "import grids", err)
	}
	return nil
}

func (r *gridRepo) ActualByFarm(farmID string) ([]entities.ActualGrid, error) {
	var cells []entities.ActualGrid
	err := r.db.Where("farm_id = ?", farmID).
		Order("row ASC, `column` ASC").Find(&cells).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list actual grid", err)
	}
	return cells, nil
}

func (r *gridRepo) ExperimentalByFarm(farmID string) ([]entities.ExperimentalGrid, error) {
	var cells []entities.ExperimentalGrid
	err := r.db.Where("farm_id = ?", farmID).
		Order("row ASC, `column` ASC").Find(&cells).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list experimental grid", err)
	}
	return cells, nil
}

func (r *gridRepo) FindExperimentalCell(id string) (*entities.ExperimentalGrid, error) {
	var cell entities.ExperimentalGrid
	if err := r.db.First(&cell, "id = ?", id).Error; err != nil {
		return nil, apperr.Gorm(err, "grid cell")
	}
	return &cell, nil
}

func (r *gridRepo) SaveExperimentalCell(cell *entities.ExperimentalGrid) error {
	if err := r.db.Save(cell).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update grid cell", err)
	}
	return nil
}

func (r *gridRepo) ResetExperimental(farmID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farm_id = ?", farmID).Delete(&entities.ExperimentalGrid{}).Error; err != nil {
			return err
		}
		var actual []entities.ActualGrid
		if err := tx.Where("farm_id = ?", farmID).Find(&actual).Error; err != nil {
			return err
		}
		if len(actual) == 0 {
			return nil
		}
		fresh := make([]entities.ExperimentalGrid, len(actual))
		for i, a := range actual {
			cell := a.GridCell
			cell.ID = "" // new identity
			fresh[i] = entities.ExperimentalGrid{GridCell: cell}
		}
		return tx.CreateInBatches(fresh, 500).Error
	})
	if err != nil {
		return apperr.Wrap(apperr.Storage, "reset experimental grid", err)
	}
	return nil
}

func (r *gridRepo) DeleteFarm(farmID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entities.Farm{}, "id = ?", farmID).Error; err != nil {
			return err
		}
		if err := tx.Where("farm_id = ?", farmID).Delete(&entities.ActualGrid{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farm_id = ?", farmID).Delete(&entities.ExperimentalGrid{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Farm{}, "id = ?", farmID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "farm not found")
		}
		return apperr.Wrap(apperr.Storage, "delete farm", err)
	}
	return nil
}
