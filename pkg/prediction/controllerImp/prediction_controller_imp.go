package controllerImp

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/export"
	"farmtwin/pkg/prediction"
	"farmtwin/pkg/prediction/serviceImp"
)

type PredictionCtrl struct{ svc *serviceImp.PredictionSvc }

func New(svc *serviceImp.PredictionSvc) *PredictionCtrl { return &PredictionCtrl{svc} }

type yieldReq struct {
	Rainfall    *float64 `json:"rainfall"`
	Temperature *float64 `json:"temperature"`
	SoilType    string   `json:"soil_type"`
	PlotID      *string  `json:"plot_id"`
}

func (h *PredictionCtrl) PredictYield(c echo.Context) error {
	var req yieldReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if req.Rainfall == nil {
		return apperr.New(apperr.Validation, "rainfall is required")
	}
	if req.Temperature == nil {
		return apperr.New(apperr.Validation, "temperature is required")
	}
	if req.SoilType == "" {
		return apperr.New(apperr.Validation, "soil_type is required")
	}
	res, warning, err := h.svc.PredictYield(c.Request().Context(), prediction.YieldRequest{
		Rainfall:    *req.Rainfall,
		Temperature: *req.Temperature,
		SoilType:    req.SoilType,
	}, req.PlotID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, predictionResponse(res, warning))
}

type irrigationReq struct {
	SoilMoisture *float64 `json:"soil_moisture"`
	Rainfall     *float64 `json:"rainfall"`
	Temperature  *float64 `json:"temperature"`
	PlotID       *string  `json:"plot_id"`
}

func (h *PredictionCtrl) PredictIrrigation(c echo.Context) error {
	var req irrigationReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	if req.SoilMoisture == nil {
		return apperr.New(apperr.Validation, "soil_moisture is required")
	}
	if req.Rainfall == nil {
		return apperr.New(apperr.Validation, "rainfall is required")
	}
	if req.Temperature == nil {
		return apperr.New(apperr.Validation, "temperature is required")
	}
	res, warning, err := h.svc.PredictIrrigation(c.Request().Context(), prediction.IrrigationRequest{
		SoilMoisture: *req.SoilMoisture,
		Rainfall:     *req.Rainfall,
		Temperature:  *req.Temperature,
	}, req.PlotID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, predictionResponse(res, warning))
}

func predictionResponse(res *prediction.Result, warning string) echo.Map {
	out := echo.Map{"prediction": res.Prediction}
	if res.Summary != "" {
		out["summary"] = res.Summary
	}
	if warning != "" {
		out["warning"] = warning
	}
	return out
}

func (h *PredictionCtrl) ListByPlot(c echo.Context) error {
	typ := entities.PredictionType(c.QueryParam("type"))
	if typ != "" && !typ.Valid() {
		return apperr.Newf(apperr.Validation, "invalid prediction type: %s", typ)
	}
	ps, err := h.svc.ListByPlot(c.Param("id"), typ)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PredictionCtrl) ExportByPlot(c echo.Context) error {
	ps, err := h.svc.ListByPlot(c.Param("id"), "")
	if err != nil {
		return err
	}
	b, err := export.PredictionsCSV(ps)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="predictions.csv"`)
	return c.Blob(http.StatusOK, "text/csv", b)
}

func (h *PredictionCtrl) ExportByFarm(c echo.Context) error {
	ps, err := h.svc.ListByFarm(c.Param("id"))
	if err != nil {
		return err
	}
	b, err := export.PredictionsCSV(ps)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="predictions.csv"`)
	return c.Blob(http.StatusOK, "text/csv", b)
}

// ReloadModels relays the model service's response verbatim; a non-JSON body
// is wrapped in {error, text} instead.
func (h *PredictionCtrl) ReloadModels(c echo.Context) error {
	status, body, err := h.svc.ReloadModels(c.Request().Context())
	if err != nil {
		return err
	}
	if json.Valid(body) {
		return c.JSONBlob(status, body)
	}
	return c.JSON(http.StatusBadGateway, echo.Map{
		"error": "model service returned an invalid response",
		"text":  string(body),
	})
}
