package prediction

import "context"

type mockClient struct{}

// NewMock returns a deterministic Client for local development when no ML
// service is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) PredictYield(_ context.Context, req YieldRequest) (*Result, error) {
	soil := map[string]float64{"sand": 0.8, "loam": 1.0, "clay": 0.9}
	factor, ok := soil[req.SoilType]
	if !ok {
		factor = 1.0
	}
	return &Result{
		Prediction: (1200 + req.Rainfall*4 + req.Temperature*10) * factor,
		Summary:    "mock yield estimate",
	}, nil
}

func (m *mockClient) PredictIrrigation(_ context.Context, req IrrigationRequest) (*Result, error) {
	need := 35 - req.SoilMoisture*0.4 - req.Rainfall*0.2
	if need < 0 {
		need = 0
	}
	return &Result{Prediction: need, Summary: "mock irrigation estimate"}, nil
}

func (m *mockClient) ReloadModels(context.Context) (int, []byte, error) {
	return 200, []byte(`{"status":"success","message":"Models reloaded."}`), nil
}
