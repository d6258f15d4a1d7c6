package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	repo "farmtwin/pkg/action/repository"
	"farmtwin/pkg/apperr"
)

type ActionCtrl struct{ repo repo.ActionRepository }

func New(repo repo.ActionRepository) *ActionCtrl { return &ActionCtrl{repo} }

type actionReq struct {
	PlotID      string     `json:"plotId"`
	Type        string     `json:"type"`
	Description *string    `json:"description"`
	PerformedBy *string    `json:"performedBy"`
	PerformedAt *time.Time `json:"performedAt"`
}

func (h *ActionCtrl) Create(c echo.Context) error {
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if req.PlotID == "" {
		return apperr.New(apperr.Validation, "plotId is required")
	}
	typ := entities.ActionType(req.Type)
	if !typ.Valid() {
		return apperr.Newf(apperr.Validation, "invalid action type: %s", req.Type)
	}
	performed := time.Now()
	if req.PerformedAt != nil {
		performed = *req.PerformedAt
	}
	a := &entities.Action{
		PlotID:      req.PlotID,
		Type:        typ,
		Description: req.Description,
		PerformedBy: req.PerformedBy,
		PerformedAt: performed,
	}
	if err := h.repo.Create(a); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActionCtrl) Get(c echo.Context) error {
	a, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActionCtrl) List(c echo.Context) error {
	as, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, as)
}

func (h *ActionCtrl) ListByPlot(c echo.Context) error {
	as, err := h.repo.ListByPlot(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, as)
}

type actionPatch struct {
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	PerformedBy *string    `json:"performedBy"`
	PerformedAt *time.Time `json:"performedAt"`
}

func (h *ActionCtrl) Patch(c echo.Context) error {
	var patch actionPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	a, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.Type != nil {
		typ := entities.ActionType(*patch.Type)
		if !typ.Valid() {
			return apperr.Newf(apperr.Validation, "invalid action type: %s", *patch.Type)
		}
		a.Type = typ
	}
	if patch.Description != nil {
		a.Description = patch.Description
	}
	if patch.PerformedBy != nil {
		a.PerformedBy = patch.PerformedBy
	}
	if patch.PerformedAt != nil {
		a.PerformedAt = *patch.PerformedAt
	}
	if err := h.repo.Update(a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActionCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
