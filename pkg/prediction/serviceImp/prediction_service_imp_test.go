package serviceImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmtwin/database"
	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/prediction"
	repoImp "farmtwin/pkg/prediction/repositoryImp"
)

func newTestSvc(t *testing.T, upstream http.HandlerFunc) (*PredictionSvc, *gorm.DB) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(prediction.NewHTTP(srv.URL), repoImp.New(db), zap.NewNop()), db
}

func makePlot(t *testing.T, db *gorm.DB) *entities.Plot {
	t.Helper()
	farm := entities.Farm{Name: "F", State: "S", District: "D"}
	require.NoError(t, db.Create(&farm).Error)
	plot := entities.Plot{FarmID: farm.ID, Row: 0, Column: 0}
	require.NoError(t, db.Create(&plot).Error)
	return &plot
}

func TestPredictYieldStoresResult(t *testing.T) {
	svc, db := newTestSvc(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict-yield", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 120.0, body["rainfall"])
		assert.Equal(t, "Loam", body["soil_type"])
		json.NewEncoder(w).Encode(map[string]any{"prediction": 1234.5})
	})
	plot := makePlot(t, db)

	res, warning, err := svc.PredictYield(context.Background(), prediction.YieldRequest{
		Rainfall: 120, Temperature: 28, SoilType: "Loam",
	}, &plot.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 1234.5, res.Prediction)

	stored, err := svc.ListByPlot(plot.ID, entities.PredictionYield)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1234.5, stored[0].Result)
	assert.Equal(t, entities.PredictionYield, stored[0].Type)
	assert.Equal(t, 120.0, stored[0].Input["rainfall"])
}

func TestPredictYieldWithoutPlotSkipsStorage(t *testing.T) {
	svc, db := newTestSvc(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"prediction": 9.0})
	})

	res, warning, err := svc.PredictYield(context.Background(), prediction.YieldRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 9.0, res.Prediction)

	var count int64
	require.NoError(t, db.Model(&entities.Prediction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPredictIrrigationUpstreamError(t *testing.T) {
	svc, db := newTestSvc(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model unavailable"})
	})
	plot := makePlot(t, db)

	_, _, err := svc.PredictIrrigation(context.Background(), prediction.IrrigationRequest{
		SoilMoisture: 35, Rainfall: 0, Temperature: 30,
	}, &plot.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Upstream, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "model unavailable")

	var count int64
	require.NoError(t, db.Model(&entities.Prediction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPredictYieldStorageFailureReturnsWarning(t *testing.T) {
	svc, db := newTestSvc(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"prediction": 50.0})
	})
	// no such plot; foreign key rejects the insert
	missing := "not-a-plot"

	res, warning, err := svc.PredictYield(context.Background(), prediction.YieldRequest{}, &missing)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Prediction)
	assert.Contains(t, warning, "prediction could not be stored")

	var count int64
	require.NoError(t, db.Model(&entities.Prediction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReloadModelsRelaysStatusAndBody(t *testing.T) {
	svc, _ := newTestSvc(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reload-models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Models reloaded successfully"}`))
	})

	status, body, err := svc.ReloadModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Models reloaded successfully"}`, string(body))
}
