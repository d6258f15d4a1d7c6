package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/recommendation/repository"
)

type RecommendationCtrl struct{ repo repo.RecommendationRepository }

func New(repo repo.RecommendationRepository) *RecommendationCtrl {
	return &RecommendationCtrl{repo}
}

type recReq struct {
	PlotID     string  `json:"plotId"`
	ActionType string  `json:"actionType"`
	Details    string  `json:"details"`
	Status     *string `json:"status"`
	Feedback   *string `json:"feedback"`
}

func (h *RecommendationCtrl) Create(c echo.Context) error {
	var req recReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if req.PlotID == "" {
		return apperr.New(apperr.Validation, "plotId is required")
	}
	at := entities.ActionType(req.ActionType)
	if !at.Valid() {
		return apperr.Newf(apperr.Validation, "invalid action type: %s", req.ActionType)
	}
	if strings.TrimSpace(req.Details) == "" {
		return apperr.New(apperr.Validation, "details is required")
	}
	status := entities.StatusPending
	if req.Status != nil {
		status = entities.RecommendationStatus(*req.Status)
		if !status.Valid() {
			return apperr.Newf(apperr.Validation, "invalid status: %s", *req.Status)
		}
	}
	rec := &entities.Recommendation{
		PlotID:     req.PlotID,
		ActionType: at,
		Details:    req.Details,
		Status:     status,
		Feedback:   req.Feedback,
	}
	if err := h.repo.Create(rec); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *RecommendationCtrl) Get(c echo.Context) error {
	rec, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *RecommendationCtrl) List(c echo.Context) error {
	recs, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecommendationCtrl) ListByPlot(c echo.Context) error {
	recs, err := h.repo.ListByPlot(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

type recPatch struct {
	ActionType *string `json:"actionType"`
	Details    *string `json:"details"`
	Status     *string `json:"status"`
	Feedback   *string `json:"feedback"`
}

func (h *RecommendationCtrl) Patch(c echo.Context) error {
	var patch recPatch
	if err := c.Bind(&patch); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	rec, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	if patch.ActionType != nil {
		at := entities.ActionType(*patch.ActionType)
		if !at.Valid() {
			return apperr.Newf(apperr.Validation, "invalid action type: %s", *patch.ActionType)
		}
		rec.ActionType = at
	}
	if patch.Details != nil {
		rec.Details = *patch.Details
	}
	if patch.Status != nil {
		status := entities.RecommendationStatus(*patch.Status)
		if !status.Valid() {
			return apperr.Newf(apperr.Validation, "invalid status: %s", *patch.Status)
		}
		rec.Status = status
	}
	if patch.Feedback != nil {
		rec.Feedback = patch.Feedback
	}
	if err := h.repo.Update(rec); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *RecommendationCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
