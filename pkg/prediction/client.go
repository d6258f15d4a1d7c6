// Package prediction talks to the external ML service and keeps the per-plot
// prediction log.
package prediction

import "context"

type YieldRequest struct {
	Rainfall    float64 `json:"rainfall"`
	Temperature float64 `json:"temperature"`
	SoilType    string  `json:"soil_type"`
}

type IrrigationRequest struct {
	SoilMoisture float64 `json:"soil_moisture"`
	Rainfall     float64 `json:"rainfall"`
	Temperature  float64 `json:"temperature"`
}

type Result struct {
	Prediction float64 `json:"prediction"`
	Summary    string  `json:"summary,omitempty"`
}

type Client interface {
	PredictYield(ctx context.Context, req YieldRequest) (*Result, error)
	PredictIrrigation(ctx context.Context, req IrrigationRequest) (*Result, error)

	// ReloadModels asks the model service to reload its models from disk and
	// returns the upstream status code and raw body for verbatim relay.
	ReloadModels(ctx context.Context) (int, []byte, error)
}
