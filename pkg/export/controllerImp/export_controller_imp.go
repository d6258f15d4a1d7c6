package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtwin/pkg/export"
	repo "farmtwin/pkg/export/repository"
)

type ExportCtrl struct{ repo repo.ExportRepository }

func New(repo repo.ExportRepository) *ExportCtrl { return &ExportCtrl{repo} }

func (h *ExportCtrl) FarmsCSV(c echo.Context) error {
	rows, types, err := h.repo.PlotRows()
	if err != nil {
		return err
	}
	b, err := export.FarmCSV(rows, types)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm_data.csv"`)
	return c.Blob(http.StatusOK, "text/csv", b)
}

func (h *ExportCtrl) FarmsXLSX(c echo.Context) error {
	rows, types, err := h.repo.PlotRows()
	if err != nil {
		return err
	}
	b, err := export.FarmXLSX(rows, types)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm_data.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}
