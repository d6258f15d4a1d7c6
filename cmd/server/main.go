package main

import (
	"flag"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"farmtwin/config"
	"farmtwin/database"
	"farmtwin/router"
	"farmtwin/seed"

	actionCtrlImp "farmtwin/pkg/action/controllerImp"
	actionRepoImp "farmtwin/pkg/action/repositoryImp"

	cropCtrlImp "farmtwin/pkg/crop/controllerImp"
	cropRepoImp "farmtwin/pkg/crop/repositoryImp"

	farmCtrlImp "farmtwin/pkg/farm/controllerImp"
	farmRepoImp "farmtwin/pkg/farm/repositoryImp"

	plotCtrlImp "farmtwin/pkg/plot/controllerImp"
	plotRepoImp "farmtwin/pkg/plot/repositoryImp"

	sensorCtrlImp "farmtwin/pkg/sensor/controllerImp"
	sensorRepoImp "farmtwin/pkg/sensor/repositoryImp"

	readingCtrlImp "farmtwin/pkg/reading/controllerImp"
	readingRepoImp "farmtwin/pkg/reading/repositoryImp"

	recCtrlImp "farmtwin/pkg/recommendation/controllerImp"
	recRepoImp "farmtwin/pkg/recommendation/repositoryImp"

	"farmtwin/pkg/prediction"
	predCtrlImp "farmtwin/pkg/prediction/controllerImp"
	predRepoImp "farmtwin/pkg/prediction/repositoryImp"
	predSvcImp "farmtwin/pkg/prediction/serviceImp"

	playCtrlImp "farmtwin/pkg/playground/controllerImp"
	playRepoImp "farmtwin/pkg/playground/repositoryImp"
	playSvcImp "farmtwin/pkg/playground/serviceImp"

	exportCtrlImp "farmtwin/pkg/export/controllerImp"
	exportRepoImp "farmtwin/pkg/export/repositoryImp"

	histCtrlImp "farmtwin/pkg/historical/controllerImp"

	"farmtwin/pkg/apperr"
)

func main() {
	seedFlag := flag.Bool("seed", false, "load demo data before serving")
	flag.Parse()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	if *seedFlag {
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.HTTPErrorHandler = apperr.EchoHandler(logger)

	// ML client: real service when configured, deterministic fallback otherwise
	var mlClient prediction.Client
	if cfg.MLServiceURL != "" {
		mlClient = prediction.NewHTTP(cfg.MLServiceURL)
	} else {
		logger.Warn("ML_SERVICE_URL not set, using mock predictions")
		mlClient = prediction.NewMock()
	}

	farmRepo := farmRepoImp.New(db)
	cropRepo := cropRepoImp.New(db)
	plotRepo := plotRepoImp.New(db)
	sensorRepo := sensorRepoImp.New(db)
	readingRepo := readingRepoImp.New(db)
	actionRepo := actionRepoImp.New(db)
	recRepo := recRepoImp.New(db)
	predRepo := predRepoImp.New(db)
	gridRepo := playRepoImp.New(db)
	exportRepo := exportRepoImp.New(db)

	predSvc := predSvcImp.New(mlClient, predRepo, logger)
	playSvc := playSvcImp.New(gridRepo, logger)

	r := router.New(
		e,
		farmCtrlImp.New(farmRepo),
		cropCtrlImp.New(cropRepo),
		plotCtrlImp.New(plotRepo),
		sensorCtrlImp.New(sensorRepo),
		readingCtrlImp.New(readingRepo, sensorRepo),
		actionCtrlImp.New(actionRepo),
		recCtrlImp.New(recRepo),
		predCtrlImp.New(predSvc),
		playCtrlImp.New(playSvc),
		exportCtrlImp.New(exportRepo),
		histCtrlImp.New(cfg.UploadDir, logger),
	)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
