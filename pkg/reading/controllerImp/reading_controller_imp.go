package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	repo "farmtwin/pkg/reading/repository"
	sensorrepo "farmtwin/pkg/sensor/repository"
	"farmtwin/pkg/simulate"
)

type ReadingCtrl struct {
	repo    repo.ReadingRepository
	sensors sensorrepo.SensorRepository
}

func New(repo repo.ReadingRepository, sensors sensorrepo.SensorRepository) *ReadingCtrl {
	return &ReadingCtrl{repo: repo, sensors: sensors}
}

type readingReq struct {
	SensorID  string     `json:"sensorId"`
	PlotID    *string    `json:"plotId"`
	Value     *float64   `json:"value"`
	Timestamp *time.Time `json:"timestamp"`
}

func (req *readingReq) toEntity() (*entities.SensorReading, error) {
	if req.SensorID == "" {
		return nil, apperr.New(apperr.Validation, "sensorId is required")
	}
	if req.Value == nil {
		return nil, apperr.New(apperr.Validation, "value is required")
	}
	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	return &entities.SensorReading{
		SensorID:  req.SensorID,
		PlotID:    req.PlotID,
		Value:     *req.Value,
		Timestamp: ts,
	}, nil
}

func (h *ReadingCtrl) Create(c echo.Context) error {
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	r, err := req.toEntity()
	if err != nil {
		return err
	}
	if err := h.repo.Create(r); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *ReadingCtrl) BulkCreate(c echo.Context) error {
	var reqs []readingReq
	if err := c.Bind(&reqs); err != nil {
		return apperr.New(apperr.Validation, "bad json")
	}
	rs := make([]entities.SensorReading, 0, len(reqs))
	for i := range reqs {
		r, err := reqs[i].toEntity()
		if err != nil {
			return err
		}
		rs = append(rs, *r)
	}
	if err := h.repo.BulkInsert(rs); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"count": len(rs)})
}

func (h *ReadingCtrl) Get(c echo.Context) error {
	r, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// ListBySensor returns readings newest first; with both start and end query
// params it returns the window in ascending order instead.
func (h *ReadingCtrl) ListBySensor(c echo.Context) error {
	sensorID := c.Param("id")
	startStr, endStr := c.QueryParam("start"), c.QueryParam("end")
	if startStr != "" && endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return apperr.New(apperr.Validation, "invalid start time")
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return apperr.New(apperr.Validation, "invalid end time")
		}
		rs, err := h.repo.ListByTimeRange(sensorID, start, end)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rs)
	}
	rs, err := h.repo.ListBySensor(sensorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *ReadingCtrl) ListByPlot(c echo.Context) error {
	rs, err := h.repo.ListByPlot(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rs)
}

// Live returns simulated readings for the matching sensors. Nothing is
// persisted; values exist only in the response.
func (h *ReadingCtrl) Live(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return apperr.New(apperr.Validation, "limit must be between 1 and 100")
		}
		limit = n
	}
	sensors, err := h.sensors.ListForSimulation(c.QueryParam("farm_id"), c.QueryParam("plot_id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, simulate.LiveReadings(sensors, time.Now()))
}

func (h *ReadingCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
