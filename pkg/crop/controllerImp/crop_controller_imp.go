package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/crop/repository"
)

type CropCtrl struct{ repo repo.CropRepository }

func New(repo repo.CropRepository) *CropCtrl { return &CropCtrl{repo} }

type cropReq struct {
	CommonName  string `json:"commonName"`
	Name        string `json:"name"`
	Variety     string `json:"variety"`
	Description string `json:"description"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperr.New(apperr.Validation, "crop name is required")
	}
	if strings.TrimSpace(req.CommonName) == "" {
		req.CommonName = req.Name
	}
	cr := &entities.Crop{
		CommonName:  req.CommonName,
		Name:        req.Name,
		Variety:     req.Variety,
		Description: req.Description,
	}
	if err := h.repo.Create(cr); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) Get(c echo.Context) error {
	cr, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) List(c echo.Context) error {
	crs, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crs)
}

type cropPatch struct {
	CommonName  *string `json:"commonName"`
	Name        *string `json:"name"`
	Variety     *string `json:"variety"`
	Description *string `json:"description"`
}

func (h *CropCtrl) Patch(c echo.Context) error {
	var patch cropPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	cr, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return apperr.New(apperr.Validation, "crop name is required")
		}
		cr.Name = *patch.Name
	}
	if patch.CommonName != nil {
		cr.CommonName = *patch.CommonName
	}
	if patch.Variety != nil {
		cr.Variety = *patch.Variety
	}
	if patch.Description != nil {
		cr.Description = *patch.Description
	}
	if err := h.repo.Update(cr); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
