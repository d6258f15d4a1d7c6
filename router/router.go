package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	farmCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	cropCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	plotCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		ListByFarm(echo.Context) error
		ListByCrop(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	sensorCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		ListByPlot(echo.Context) error
		ListByFarm(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	readingCtrl interface {
		Create(echo.Context) error
		BulkCreate(echo.Context) error
		Get(echo.Context) error
		ListBySensor(echo.Context) error
		ListByPlot(echo.Context) error
		Live(echo.Context) error
		Delete(echo.Context) error
	},
	actionCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		ListByPlot(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	recCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		ListByPlot(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	predCtrl interface {
		PredictYield(echo.Context) error
		PredictIrrigation(echo.Context) error
		ListByPlot(echo.Context) error
		ExportByPlot(echo.Context) error
		ExportByFarm(echo.Context) error
		ReloadModels(echo.Context) error
	},
	playCtrl interface {
		Import(echo.Context) error
		Farms(echo.Context) error
		Actual(echo.Context) error
		Experimental(echo.Context) error
		PatchCell(echo.Context) error
		Reset(echo.Context) error
		DeleteFarm(echo.Context) error
	},
	exportCtrl interface {
		FarmsCSV(echo.Context) error
		FarmsXLSX(echo.Context) error
	},
	historicalCtrl interface{ Upload(echo.Context) error },
) *echo.Echo {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.POST("/farms", farmCtrl.Create)
	e.GET("/farms", farmCtrl.List)
	e.GET("/farms/:id", farmCtrl.Get)
	e.PATCH("/farms/:id", farmCtrl.Patch)
	e.DELETE("/farms/:id", farmCtrl.Delete)
	e.GET("/farms/:id/plots", plotCtrl.ListByFarm)
	e.GET("/farms/:id/sensors", sensorCtrl.ListByFarm)
	e.GET("/farms/:id/predictions/export", predCtrl.ExportByFarm)

	e.POST("/crops", cropCtrl.Create)
	e.GET("/crops", cropCtrl.List)
	e.GET("/crops/:id", cropCtrl.Get)
	e.PATCH("/crops/:id", cropCtrl.Patch)
	e.DELETE("/crops/:id", cropCtrl.Delete)
	e.GET("/crops/:id/plots", plotCtrl.ListByCrop)

	e.POST("/plots", plotCtrl.Create)
	e.GET("/plots", plotCtrl.List)
	e.GET("/plots/:id", plotCtrl.Get)
	e.PATCH("/plots/:id", plotCtrl.Patch)
	e.DELETE("/plots/:id", plotCtrl.Delete)
	e.GET("/plots/:id/sensors", sensorCtrl.ListByPlot)
	e.GET("/plots/:id/readings", readingCtrl.ListByPlot)
	e.GET("/plots/:id/actions", actionCtrl.ListByPlot)
	e.GET("/plots/:id/recommendations", recCtrl.ListByPlot)
	e.GET("/plots/:id/predictions", predCtrl.ListByPlot)
	e.GET("/plots/:id/predictions/export", predCtrl.ExportByPlot)

	e.POST("/sensors", sensorCtrl.Create)
	e.GET("/sensors", sensorCtrl.List)
	e.GET("/sensors/:id", sensorCtrl.Get)
	e.PATCH("/sensors/:id", sensorCtrl.Patch)
	e.DELETE("/sensors/:id", sensorCtrl.Delete)
	e.GET("/sensors/:id/readings", readingCtrl.ListBySensor)

	e.POST("/readings", readingCtrl.Create)
	e.POST("/readings/bulk", readingCtrl.BulkCreate)
	e.GET("/readings/live", readingCtrl.Live)
	e.GET("/readings/:id", readingCtrl.Get)
	e.DELETE("/readings/:id", readingCtrl.Delete)

	e.POST("/actions", actionCtrl.Create)
	e.GET("/actions", actionCtrl.List)
	e.GET("/actions/:id", actionCtrl.Get)
	e.PATCH("/actions/:id", actionCtrl.Patch)
	e.DELETE("/actions/:id", actionCtrl.Delete)

	e.POST("/recommendations", recCtrl.Create)
	e.GET("/recommendations", recCtrl.List)
	e.GET("/recommendations/:id", recCtrl.Get)
	e.PATCH("/recommendations/:id", recCtrl.Patch)
	e.DELETE("/recommendations/:id", recCtrl.Delete)

	e.POST("/predict/yield", predCtrl.PredictYield)
	e.POST("/predict/irrigation", predCtrl.PredictIrrigation)
	e.POST("/reload-models", predCtrl.ReloadModels)

	g := e.Group("/playground")
	g.POST("/import", playCtrl.Import)
	g.GET("/farms", playCtrl.Farms)
	g.GET("/farms/:id/actual", playCtrl.Actual)
	g.GET("/farms/:id/experimental", playCtrl.Experimental)
	g.PATCH("/cells/:id", playCtrl.PatchCell)
	g.POST("/farms/:id/reset", playCtrl.Reset)
	g.DELETE("/farms/:id", playCtrl.DeleteFarm)

	e.GET("/export/farms.csv", exportCtrl.FarmsCSV)
	e.GET("/export/farms.xlsx", exportCtrl.FarmsXLSX)

	e.POST("/historical/upload", historicalCtrl.Upload)
	return e
}
