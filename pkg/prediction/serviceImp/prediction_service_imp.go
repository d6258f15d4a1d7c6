package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"farmtwin/entities"
	"farmtwin/pkg/prediction"
	repo "farmtwin/pkg/prediction/repository"
)

type PredictionSvc struct {
	client prediction.Client
	repo   repo.PredictionRepository
	logger *zap.Logger
}

func New(client prediction.Client, repo repo.PredictionRepository, logger *zap.Logger) *PredictionSvc {
	return &PredictionSvc{client: client, repo: repo, logger: logger}
}

// PredictYield forwards the features to the model service and, when plotID is
// set, records the call in the prediction log. A failed write never masks an
// already-obtained prediction: the result is returned together with a warning.
func (s *PredictionSvc) PredictYield(ctx context.Context, req prediction.YieldRequest, plotID *string) (*prediction.Result, string, error) {
	res, err := s.client.PredictYield(ctx, req)
	if err != nil {
		return nil, "", err
	}
	input := map[string]any{
		"rainfall":    req.Rainfall,
		"temperature": req.Temperature,
		"soil_type":   req.SoilType,
	}
	warning := s.store(plotID, entities.PredictionYield, input, res.Prediction)
	return res, warning, nil
}

func (s *PredictionSvc) PredictIrrigation(ctx context.Context, req prediction.IrrigationRequest, plotID *string) (*prediction.Result, string, error) {
	res, err := s.client.PredictIrrigation(ctx, req)
	if err != nil {
		return nil, "", err
	}
	input := map[string]any{
		"soil_moisture": req.SoilMoisture,
		"rainfall":      req.Rainfall,
		"temperature":   req.Temperature,
	}
	warning := s.store(plotID, entities.PredictionIrrigation, input, res.Prediction)
	return res, warning, nil
}

func (s *PredictionSvc) store(plotID *string, typ entities.PredictionType, input map[string]any, result float64) string {
	if plotID == nil || *plotID == "" {
		return ""
	}
	p := &entities.Prediction{PlotID: *plotID, Type: typ, Input: input, Result: result}
	if err := s.repo.Create(p); err != nil {
		s.logger.Warn("prediction obtained but not stored",
			zap.String("plot_id", *plotID),
			zap.String("type", string(typ)),
			zap.Error(err))
		return "prediction could not be stored: " + err.Error()
	}
	return ""
}

func (s *PredictionSvc) ListByPlot(plotID string, typ entities.PredictionType) ([]entities.Prediction, error) {
	return s.repo.ListByPlot(plotID, typ)
}

func (s *PredictionSvc) ListByFarm(farmID string) ([]entities.Prediction, error) {
	return s.repo.ListByFarm(farmID)
}

func (s *PredictionSvc) ReloadModels(ctx context.Context) (int, []byte, error) {
	return s.client.ReloadModels(ctx)
}
