package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtwin/pkg/apperr"
	"farmtwin/pkg/playground/serviceImp"
)

type PlaygroundCtrl struct{ svc *serviceImp.PlaygroundSvc }

func New(svc *serviceImp.PlaygroundSvc) *PlaygroundCtrl { return &PlaygroundCtrl{svc} }

// Import accepts a multipart CSV upload under the "file" field.
func (h *PlaygroundCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apperr.New(apperr.Validation, "missing file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return apperr.Wrap(apperr.Validation, "cannot read upload", err)
	}
	defer f.Close()

	farm, count, err := h.svc.ImportCSV(f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"farmId":   farm.ID,
		"farmName": farm.Name,
		"cells":    count,
	})
}

func (h *PlaygroundCtrl) Farms(c echo.Context) error {
	fs, err := h.svc.Farms()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fs)
}

func (h *PlaygroundCtrl) Actual(c echo.Context) error {
	cells, err := h.svc.Actual(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cells)
}

func (h *PlaygroundCtrl) Experimental(c echo.Context) error {
	cells, err := h.svc.Experimental(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cells)
}

func (h *PlaygroundCtrl) PatchCell(c echo.Context) error {
	var patch serviceImp.CellPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	cell, err := h.svc.PatchCell(c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cell)
}

func (h *PlaygroundCtrl) Reset(c echo.Context) error {
	if err := h.svc.Reset(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "experimental grid reset"})
}

func (h *PlaygroundCtrl) DeleteFarm(c echo.Context) error {
	if err := h.svc.DeleteFarm(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "farm deleted"})
}
