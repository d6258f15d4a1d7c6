package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/sensor/repository"
)

type SensorCtrl struct{ repo repo.SensorRepository }

func New(repo repo.SensorRepository) *SensorCtrl { return &SensorCtrl{repo} }

type sensorReq struct {
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	PlotID      *string    `json:"plotId"`
	FarmID      *string    `json:"farmId"`
	Location    *string    `json:"location"`
	InstalledAt *time.Time `json:"installedAt"`
}

func (h *SensorCtrl) Create(c echo.Context) error {
	var req sensorReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperr.New(apperr.Validation, "sensor name is required")
	}
	typ := entities.SensorType(req.Type)
	if !typ.Valid() {
		return apperr.Newf(apperr.Validation, "invalid sensor type: %s", req.Type)
	}
	installed := time.Now()
	if req.InstalledAt != nil {
		installed = *req.InstalledAt
	}
	s := &entities.Sensor{
		Type:        typ,
		Name:        req.Name,
		PlotID:      req.PlotID,
		FarmID:      req.FarmID,
		Location:    req.Location,
		InstalledAt: installed,
	}
	if err := h.repo.Create(s); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SensorCtrl) Get(c echo.Context) error {
	s, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SensorCtrl) List(c echo.Context) error {
	ss, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *SensorCtrl) ListByPlot(c echo.Context) error {
	ss, err := h.repo.ListByPlot(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *SensorCtrl) ListByFarm(c echo.Context) error {
	ss, err := h.repo.ListByFarm(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ss)
}

type sensorPatch struct {
	Type        *string    `json:"type"`
	Name        *string    `json:"name"`
	PlotID      *string    `json:"plotId"`
	FarmID      *string    `json:"farmId"`
	Location    *string    `json:"location"`
	InstalledAt *time.Time `json:"installedAt"`
}

func (h *SensorCtrl) Patch(c echo.Context) error {
	var patch sensorPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	s, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.Type != nil {
		typ := entities.SensorType(*patch.Type)
		if !typ.Valid() {
			return apperr.Newf(apperr.Validation, "invalid sensor type: %s", *patch.Type)
		}
		s.Type = typ
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.PlotID != nil {
		s.PlotID = patch.PlotID
	}
	if patch.FarmID != nil {
		s.FarmID = patch.FarmID
	}
	if patch.Location != nil {
		s.Location = patch.Location
	}
	if patch.InstalledAt != nil {
		s.InstalledAt = *patch.InstalledAt
	}
	if err := h.repo.Update(s); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SensorCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
