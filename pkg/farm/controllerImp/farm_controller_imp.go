package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/farm/repository"
)

type FarmCtrl struct{ repo repo.FarmRepository }

func New(repo repo.FarmRepository) *FarmCtrl { return &FarmCtrl{repo} }

type farmReq struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	District string `json:"district"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperr.New(apperr.Validation, "farm name is required")
	}
	f := &entities.Farm{Name: req.Name, State: req.State, District: req.District}
	if err := h.repo.Create(f); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	fs, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fs)
}

type farmPatch struct {
	Name     *string `json:"name"`
	State    *string `json:"state"`
	District *string `json:"district"`
}

func (h *FarmCtrl) Patch(c echo.Context) error {
	var patch farmPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return apperr.New(apperr.Validation, "farm name is required")
		}
		f.Name = *patch.Name
	}
	if patch.State != nil {
		f.State = *patch.State
	}
	if patch.District != nil {
		f.District = *patch.District
	}
	if err := h.repo.Update(f); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
