package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/plot/repository"
)

type PlotCtrl struct{ repo repo.PlotRepository }

func New(repo repo.PlotRepository) *PlotCtrl { return &PlotCtrl{repo} }

type plotReq struct {
	FarmID    string   `json:"farmId"`
	CropID    *string  `json:"cropId"`
	Row       int      `json:"row"`
	Column    int      `json:"column"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaSqM   *float64 `json:"areaSqM"`
	SoilType  *string  `json:"soilType"`
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if req.FarmID == "" {
		return apperr.New(apperr.Validation, "farmId is required")
	}
	p := &entities.Plot{
		FarmID:    req.FarmID,
		CropID:    req.CropID,
		Row:       req.Row,
		Column:    req.Column,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AreaSqM:   req.AreaSqM,
		SoilType:  req.SoilType,
	}
	if err := h.repo.Create(p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) List(c echo.Context) error {
	ps, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PlotCtrl) ListByFarm(c echo.Context) error {
	ps, err := h.repo.ListByFarm(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PlotCtrl) ListByCrop(c echo.Context) error {
	ps, err := h.repo.ListByCrop(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ps)
}

type plotPatch struct {
	CropID    *string  `json:"cropId"`
	Row       *int     `json:"row"`
	Column    *int     `json:"column"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaSqM   *float64 `json:"areaSqM"`
	SoilType  *string  `json:"soilType"`
}

func (h *PlotCtrl) Patch(c echo.Context) error {
	var patch plotPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.CropID != nil {
		p.CropID = patch.CropID
	}
	if patch.Row != nil {
		p.Row = *patch.Row
	}
	if patch.Column != nil {
		p.Column = *patch.Column
	}
	if patch.Latitude != nil {
		p.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		p.Longitude = patch.Longitude
	}
	if patch.AreaSqM != nil {
		p.AreaSqM = patch.AreaSqM
	}
	if patch.SoilType != nil {
		p.SoilType = patch.SoilType
	}
	if err := h.repo.Update(p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
