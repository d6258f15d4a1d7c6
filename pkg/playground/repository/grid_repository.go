package repository

import "farmtwin/entities"

type GridRepository interface {
	FarmNames() ([]string, error)
	ListFarms() ([]entities.Farm, error)

	// ImportGrids creates the farm and inserts cells into both the actual and
	// experimental grids in one transaction.
	ImportGrids(farm *entities.Farm, cells []entities.GridCell) error

	ActualByFarm(farmID string) ([]entities.ActualGrid, error)
	ExperimentalByFarm(farmID string) ([]entities.ExperimentalGrid, error)

	FindExperimentalCell(id string) (*entities.ExperimentalGrid, error)
	SaveExperimentalCell(cell *entities.ExperimentalGrid) error

	// ResetExperimental atomically replaces the experimental grid with a fresh
	// copy of the actual grid.
	ResetExperimental(farmID string) error

	// DeleteFarm removes the farm's grids and the farm itself in one
	// transaction.
	DeleteFarm(farmID string) error
}
